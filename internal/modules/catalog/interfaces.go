package catalog

import (
	"context"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error)
	SetAvailable(ctx context.Context, id int64, available bool) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.CategoryWithCount, error)
}
