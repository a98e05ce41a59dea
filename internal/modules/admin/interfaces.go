package admin

import (
	"context"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type BookingReader interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	Stats(ctx context.Context) (*repository.BookingStats, error)
	StatsForEquipment(ctx context.Context, equipmentID int64) (*repository.EquipmentStats, error)
}
