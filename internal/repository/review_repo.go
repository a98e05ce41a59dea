package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equiprent/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func toDomainReview(m reviewModel, userName string) *domain.Review {
	return &domain.Review{
		ID:          m.ID,
		EquipmentID: m.EquipmentID,
		UserID:      m.UserID,
		UserName:    userName,
		Rating:      m.Rating,
		Comment:     m.Comment,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	m := reviewModel{
		EquipmentID: rev.EquipmentID,
		UserID:      rev.UserID,
		Rating:      rev.Rating,
		Comment:     rev.Comment,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*rev = *toDomainReview(m, rev.UserName)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainReview(m, ""), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&reviewModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForEquipment returns reviews newest first, with the reviewer's
// display name joined in.
func (r *ReviewRepository) ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.Review, error) {
	var rows []struct {
		reviewModel
		UserName string
	}
	tx := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Where("reviews.equipment_id = ?", equipmentID).
		Order("reviews.created_at DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toDomainReview(row.reviewModel, row.UserName))
	}
	return out, nil
}

// HasUserReviewed reports whether the user already left a review for the
// equipment. One review per renter per item.
func (r *ReviewRepository) HasUserReviewed(ctx context.Context, userID, equipmentID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&reviewModel{}).
		Where("user_id = ? AND equipment_id = ?", userID, equipmentID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
