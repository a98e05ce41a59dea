package domain

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type DeliveryOption string

const (
	DeliveryPickup  DeliveryOption = "pickup"
	DeliveryCourier DeliveryOption = "delivery"
)

var ErrInvalidStatusTransition = errors.New("invalid booking status transition")

// allowedTransitions is the booking lifecycle as a directed graph.
// completed and cancelled are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingActive, BookingCancelled},
	BookingActive:    {BookingCompleted, BookingCancelled},
	BookingCompleted: {},
	BookingCancelled: {},
}

// CanTransition reports whether from -> to is an allowed status change.
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingActive, BookingCompleted, BookingCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

func ParseDeliveryOption(s string) (DeliveryOption, bool) {
	switch DeliveryOption(s) {
	case DeliveryPickup, DeliveryCourier:
		return DeliveryOption(s), true
	}
	return "", false
}

type Booking struct {
	ID              int64          `json:"id"`
	Reference       string         `json:"reference"`
	EquipmentID     int64          `json:"equipment_id" validate:"required"`
	UserID          int64          `json:"user_id" validate:"required"`
	StartDate       time.Time      `json:"start_date" validate:"required"`
	EndDate         time.Time      `json:"end_date" validate:"required"`
	TotalPrice      float64        `json:"total_price" validate:"gte=0"`
	Status          BookingStatus  `json:"status"`
	DeliveryOption  DeliveryOption `json:"delivery_option"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	CancelledAt     *time.Time     `json:"cancelled_at,omitempty"`

	User      *User      `json:"user,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
}

// Transition applies a status change, maintaining the cancellation
// timestamp. Fails with ErrInvalidStatusTransition when the change is not
// in the lifecycle graph.
func (b *Booking) Transition(to BookingStatus, now time.Time) error {
	if !CanTransition(b.Status, to) {
		return ErrInvalidStatusTransition
	}
	b.Status = to
	if to == BookingCancelled && b.CancelledAt == nil {
		t := now
		b.CancelledAt = &t
	}
	return nil
}

// Blocks reports whether this booking makes its equipment unavailable for
// other renters. Pending requests and finished rentals never block.
func (b *Booking) Blocks() bool {
	return b.Status == BookingConfirmed || b.Status == BookingActive
}
