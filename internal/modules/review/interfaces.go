package review

import (
	"context"

	"equiprent/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rev *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
	ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.Review, error)
	HasUserReviewed(ctx context.Context, userID, equipmentID int64) (bool, error)
}

// EquipmentStore covers the two catalog touches a review makes: the
// existence check on write and the denormalized rating refresh after.
type EquipmentStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	RefreshRatingStats(ctx context.Context, equipmentID int64) error
}
