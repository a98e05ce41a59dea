package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func rangeOfDays(n int) DateRange {
	return DateRange{Start: day(0), End: day(n)}
}

var testCard = RateCard{PerDay: 150, PerWeek: 900, PerMonth: 3500}

func TestQuote_DailyTier(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	for days := 1; days <= 6; days++ {
		q, err := calc.Quote(testCard, rangeOfDays(days), false)
		require.NoError(t, err)
		assert.Equal(t, days, q.Days)
		assert.InDelta(t, testCard.PerDay*float64(days), q.Subtotal, 1e-9)
	}
}

func TestQuote_WeeklyTier(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	for _, days := range []int{7, 10, 29} {
		q, err := calc.Quote(testCard, rangeOfDays(days), false)
		require.NoError(t, err)
		assert.InDelta(t, testCard.PerWeek/7*float64(days), q.Subtotal, 1e-9, "days=%d", days)
	}
}

func TestQuote_MonthlyTier(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	for _, days := range []int{30, 35, 90} {
		q, err := calc.Quote(testCard, rangeOfDays(days), false)
		require.NoError(t, err)
		assert.InDelta(t, testCard.PerMonth/30*float64(days), q.Subtotal, 1e-9, "days=%d", days)
	}
}

func TestQuote_FiveDaysPickup(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	q, err := calc.Quote(testCard, rangeOfDays(5), false)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Days)
	assert.Equal(t, 750.0, q.Subtotal)
	assert.Equal(t, 0.0, q.DeliveryFee)
	assert.Equal(t, 135.0, q.Tax)
	assert.Equal(t, 885.0, q.Total)
}

func TestQuote_TenDaysDelivery(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	q, err := calc.Quote(testCard, rangeOfDays(10), true)
	require.NoError(t, err)
	assert.Equal(t, 10, q.Days)
	assert.InDelta(t, 1285.71, q.Subtotal, 0.01)
	assert.Equal(t, 50.0, q.DeliveryFee)
	assert.InDelta(t, 231.43, q.Tax, 0.01)
	assert.InDelta(t, 1567.14, q.Total, 0.01)
}

func TestQuote_ThirtyFiveDays(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	q, err := calc.Quote(testCard, rangeOfDays(35), false)
	require.NoError(t, err)
	assert.InDelta(t, 4083.33, q.Subtotal, 0.01)
}

func TestQuote_TotalIdentity(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	for _, days := range []int{1, 6, 7, 29, 30, 365} {
		for _, delivery := range []bool{false, true} {
			q, err := calc.Quote(testCard, rangeOfDays(days), delivery)
			require.NoError(t, err)
			// exact identity, not InDelta: components must sum with no
			// independent rounding
			assert.Equal(t, q.Subtotal+q.DeliveryFee+q.Tax, q.Total)
			assert.GreaterOrEqual(t, q.Subtotal, 0.0)
			assert.GreaterOrEqual(t, q.Tax, 0.0)
		}
	}
}

func TestQuote_DeliveryFeeNotTaxed(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	pickup, err := calc.Quote(testCard, rangeOfDays(3), false)
	require.NoError(t, err)
	delivery, err := calc.Quote(testCard, rangeOfDays(3), true)
	require.NoError(t, err)

	// same subtotal, same tax: the fee never enters the tax base
	assert.Equal(t, pickup.Subtotal, delivery.Subtotal)
	assert.Equal(t, pickup.Tax, delivery.Tax)
	assert.Equal(t, pickup.Total+DefaultDeliveryFee, delivery.Total)
}

func TestQuote_InvalidRange(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	_, err := calc.Quote(testCard, DateRange{Start: day(5), End: day(5)}, false)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = calc.Quote(testCard, DateRange{Start: day(5), End: day(2)}, false)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestQuote_InvalidRate(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	_, err := calc.Quote(RateCard{PerDay: -1, PerWeek: 900, PerMonth: 3500}, rangeOfDays(3), false)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestQuote_NormalizesTimeOfDay(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	// 5 calendar days regardless of clock components on either endpoint
	r := DateRange{
		Start: day(0).Add(14*time.Hour + 30*time.Minute),
		End:   day(5).Add(9 * time.Hour),
	}
	q, err := calc.Quote(testCard, r, false)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Days)
}

func TestQuote_ZeroRatesAllowed(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	q, err := calc.Quote(RateCard{}, rangeOfDays(4), true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.Subtotal)
	assert.Equal(t, DefaultDeliveryFee, q.Total)
}

func TestQuote_TierUndercutNotAssumed(t *testing.T) {
	calc := NewCalculator(DefaultDeliveryFee, DefaultTaxRate)

	// weekly rate "worse" than 7x daily: engine still applies the weekly
	// tier mechanically
	card := RateCard{PerDay: 10, PerWeek: 1000, PerMonth: 5000}
	q, err := calc.Quote(card, rangeOfDays(7), false)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, q.Subtotal, 1e-9)
}
