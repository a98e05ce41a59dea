package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equiprent/internal/domain"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func toDomainCategory(m categoryModel) *domain.Category {
	return &domain.Category{
		ID:        m.ID,
		Slug:      m.Slug,
		Name:      m.Name,
		NameRu:    m.NameRu,
		NameAz:    m.NameAz,
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toCategoryModel(c *domain.Category) categoryModel {
	return categoryModel{
		ID:     c.ID,
		Slug:   c.Slug,
		Name:   c.Name,
		NameRu: c.NameRu,
		NameAz: c.NameAz,
		Icon:   c.Icon,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	m := toCategoryModel(c)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	m := toCategoryModel(c)
	tx := r.db.WithContext(ctx).Model(&categoryModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"slug":    m.Slug,
		"name":    m.Name,
		"name_ru": m.NameRu,
		"name_az": m.NameAz,
		"icon":    m.Icon,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&categoryModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var m categoryModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainCategory(m), nil
}

// List returns all categories ordered by name, each with the number of
// equipment items assigned to it.
func (r *CategoryRepository) List(ctx context.Context) ([]domain.CategoryWithCount, error) {
	var rows []struct {
		categoryModel
		EquipmentCount int
	}
	tx := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.*, COUNT(equipment.id) AS equipment_count").
		Joins("LEFT JOIN equipment ON equipment.category_id = categories.id").
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.CategoryWithCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CategoryWithCount{
			Category:       *toDomainCategory(row.categoryModel),
			EquipmentCount: row.EquipmentCount,
		})
	}
	return out, nil
}
