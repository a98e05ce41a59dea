package booking

import (
	"context"
	"time"

	"equiprent/internal/domain"
)

// BookingRepository is the persistence surface the booking service needs.
// CreateIfAvailable and ConfirmIfAvailable are atomic check-and-commit
// operations: the overlap check and the write happen in one transaction,
// so "no conflict" can never go stale between check and insert.
type BookingRepository interface {
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	ConfirmIfAvailable(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListActiveForEquipment(ctx context.Context, equipmentID int64) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error
}

// EquipmentStore is the read-only catalog slice used when pricing and
// validating a booking request.
type EquipmentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}

// NotificationSender pushes booking lifecycle events to the owner.
// Implementations must tolerate offline users.
type NotificationSender interface {
	BookingCreated(ctx context.Context, b *domain.Booking)
	BookingStatusChanged(ctx context.Context, b *domain.Booking)
}
