package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equiprent/internal/domain"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// EquipmentFilter narrows and orders catalog listings. Zero value lists
// everything, newest first.
type EquipmentFilter struct {
	CategoryID *int64
	Available  *bool
	Query      string // matched against name and description, case-insensitive
	Sort       string // price_asc | price_desc | rating | newest
	Limit      int
	Offset     int
}

func toDomainEquipment(m equipmentModel) *domain.Equipment {
	return &domain.Equipment{
		ID:             m.ID,
		CategoryID:     m.CategoryID,
		Name:           m.Name,
		NameRu:         m.NameRu,
		NameAz:         m.NameAz,
		Description:    m.Description,
		DescriptionRu:  m.DescriptionRu,
		DescriptionAz:  m.DescriptionAz,
		Specifications: unmarshalStringMap(m.Specifications),
		PricePerDay:    m.PricePerDay,
		PricePerWeek:   m.PricePerWeek,
		PricePerMonth:  m.PricePerMonth,
		MainImage:      m.MainImage,
		Images:         unmarshalStringSlice(m.Images),
		Available:      m.Available,
		Location:       m.Location,
		Rating:         m.Rating,
		ReviewCount:    m.ReviewCount,
		Features:       unmarshalStringSlice(m.Features),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toEquipmentModel(e *domain.Equipment) equipmentModel {
	return equipmentModel{
		ID:             e.ID,
		CategoryID:     e.CategoryID,
		Name:           e.Name,
		NameRu:         e.NameRu,
		NameAz:         e.NameAz,
		Description:    e.Description,
		DescriptionRu:  e.DescriptionRu,
		DescriptionAz:  e.DescriptionAz,
		Specifications: marshalJSON(e.Specifications),
		PricePerDay:    e.PricePerDay,
		PricePerWeek:   e.PricePerWeek,
		PricePerMonth:  e.PricePerMonth,
		MainImage:      e.MainImage,
		Images:         marshalJSON(e.Images),
		Available:      e.Available,
		Location:       e.Location,
		Rating:         e.Rating,
		ReviewCount:    e.ReviewCount,
		Features:       marshalJSON(e.Features),
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEquipment(m)
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	m := toEquipmentModel(e)
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).Where("id = ?", e.ID).Updates(map[string]any{
		"category_id":     m.CategoryID,
		"name":            m.Name,
		"name_ru":         m.NameRu,
		"name_az":         m.NameAz,
		"description":     m.Description,
		"description_ru":  m.DescriptionRu,
		"description_az":  m.DescriptionAz,
		"specifications":  m.Specifications,
		"price_per_day":   m.PricePerDay,
		"price_per_week":  m.PricePerWeek,
		"price_per_month": m.PricePerMonth,
		"main_image":      m.MainImage,
		"images":          m.Images,
		"available":       m.Available,
		"location":        m.Location,
		"features":        m.Features,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&equipmentModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var m equipmentModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainEquipment(m), nil
}

func (r *EquipmentRepository) List(ctx context.Context, f EquipmentFilter) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Model(&equipmentModel{})

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}

	switch f.Sort {
	case "price_asc":
		q = q.Order("price_per_day ASC")
	case "price_desc":
		q = q.Order("price_per_day DESC")
	case "rating":
		q = q.Order("rating DESC")
	default:
		q = q.Order("created_at DESC")
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var ms []equipmentModel
	if tx := q.Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Equipment, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainEquipment(m))
	}
	return out, nil
}

func (r *EquipmentRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	tx := r.db.WithContext(ctx).Model(&equipmentModel{}).Where("id = ?", id).Update("available", available)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RefreshRatingStats recomputes the denormalized rating and review_count
// columns from the reviews table.
func (r *EquipmentRepository) RefreshRatingStats(ctx context.Context, equipmentID int64) error {
	return r.db.WithContext(ctx).Exec(`
UPDATE equipment
SET rating = COALESCE((SELECT AVG(CAST(rating AS REAL)) FROM reviews WHERE equipment_id = ?), 0),
    review_count = (SELECT COUNT(1) FROM reviews WHERE equipment_id = ?)
WHERE id = ?
`, equipmentID, equipmentID, equipmentID).Error
}
