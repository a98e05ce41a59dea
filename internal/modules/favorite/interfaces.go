package favorite

import (
	"context"

	"equiprent/internal/domain"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, equipmentID int64) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, equipmentID int64) error
	Exists(ctx context.Context, userID, equipmentID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

type EquipmentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
}
