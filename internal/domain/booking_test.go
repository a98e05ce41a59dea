package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingConfirmed, BookingActive, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingActive, BookingCompleted, true},
		{BookingActive, BookingCancelled, true},

		{BookingPending, BookingActive, false},
		{BookingPending, BookingCompleted, false},
		{BookingConfirmed, BookingCompleted, false},
		{BookingCompleted, BookingActive, false},
		{BookingCancelled, BookingPending, false},
		{BookingCompleted, BookingCancelled, false},
		{BookingActive, BookingPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransition_PendingToCompletedFails(t *testing.T) {
	b := &Booking{Status: BookingPending}

	err := b.Transition(BookingCompleted, time.Now())
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, BookingPending, b.Status)
}

func TestTransition_CancelSetsTimestamp(t *testing.T) {
	b := &Booking{Status: BookingConfirmed}
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, b.Transition(BookingCancelled, now))
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestBlocks(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingConfirmed}).Blocks())
	assert.True(t, (&Booking{Status: BookingActive}).Blocks())
	assert.False(t, (&Booking{Status: BookingPending}).Blocks())
	assert.False(t, (&Booking{Status: BookingCompleted}).Blocks())
	assert.False(t, (&Booking{Status: BookingCancelled}).Blocks())
}

func TestParseBookingStatus(t *testing.T) {
	s, ok := ParseBookingStatus("confirmed")
	require.True(t, ok)
	assert.Equal(t, BookingConfirmed, s)

	_, ok = ParseBookingStatus("shipped")
	assert.False(t, ok)
}
