// Package pricing implements the rental quote calculator and the
// availability overlap predicate. Everything here is pure: no I/O, no
// clocks, safe for concurrent use.
package pricing

import (
	"errors"
	"time"
)

var (
	// ErrInvalidRange means the range end is not strictly after its start.
	ErrInvalidRange = errors.New("end date must be after start date")
	// ErrInvalidRate means a rate card carries a negative rate.
	ErrInvalidRate = errors.New("rate card values must be non-negative")
)

// RateCard is an equipment item's tiered price list, currency-agnostic.
type RateCard struct {
	PerDay   float64 `json:"per_day"`
	PerWeek  float64 `json:"per_week"`
	PerMonth float64 `json:"per_month"`
}

func (rc RateCard) valid() bool {
	return rc.PerDay >= 0 && rc.PerWeek >= 0 && rc.PerMonth >= 0
}

// Validate reports whether the card is usable for quoting. It is the
// write-time counterpart of the check Quote performs.
func (rc RateCard) Validate() error {
	if !rc.valid() {
		return ErrInvalidRate
	}
	return nil
}

// TierRatesInverted reports whether a longer tier prices a day higher
// than a shorter one, so that renting longer costs more per day. Legal,
// but almost always a data-entry mistake worth flagging.
func (rc RateCard) TierRatesInverted() bool {
	return rc.PerWeek/7 > rc.PerDay || rc.PerMonth/30 > rc.PerWeek/7
}

// DateRange is a calendar date interval. Time-of-day components are
// ignored: both endpoints are truncated to midnight UTC before any
// arithmetic so sub-day drift can never leak into the day count.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Normalize returns the range with both endpoints at midnight UTC.
func (r DateRange) Normalize() DateRange {
	return DateRange{Start: midnight(r.Start), End: midnight(r.End)}
}

// Days is the whole-day length of the normalized range. Zero or negative
// means the range is invalid for pricing.
func (r DateRange) Days() int {
	n := r.Normalize()
	return int(n.End.Sub(n.Start).Hours() / 24)
}

// Quote is the price breakdown for a prospective booking. It is derived,
// never persisted; Total == Subtotal + DeliveryFee + Tax holds exactly,
// with no rounding of intermediate components. Round only the final
// presented value.
type Quote struct {
	Days        int     `json:"days"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Calculator computes quotes from a rate card and a date range. The
// delivery fee and tax rate are deployment configuration, not constants.
type Calculator struct {
	DeliveryFee float64
	TaxRate     float64
}

// Default storefront pricing parameters: flat 50 delivery fee, 18% VAT
// computed on the rental subtotal only.
const (
	DefaultDeliveryFee = 50.0
	DefaultTaxRate     = 0.18
)

func NewCalculator(deliveryFee, taxRate float64) Calculator {
	return Calculator{DeliveryFee: deliveryFee, TaxRate: taxRate}
}

// Quote prices a rental. Tier selection is by day count, first match wins:
// 30+ days bill at the monthly rate spread over 30 days, 7+ days at the
// weekly rate spread over 7, anything shorter at the daily rate. The
// delivery fee is never part of the tax base.
func (c Calculator) Quote(card RateCard, r DateRange, delivery bool) (Quote, error) {
	if !card.valid() {
		return Quote{}, ErrInvalidRate
	}
	days := r.Days()
	if days <= 0 {
		return Quote{}, ErrInvalidRange
	}

	var dailyRate float64
	switch {
	case days >= 30:
		dailyRate = card.PerMonth / 30
	case days >= 7:
		dailyRate = card.PerWeek / 7
	default:
		dailyRate = card.PerDay
	}

	subtotal := dailyRate * float64(days)

	var fee float64
	if delivery {
		fee = c.DeliveryFee
	}
	tax := subtotal * c.TaxRate

	return Quote{
		Days:        days,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}, nil
}
