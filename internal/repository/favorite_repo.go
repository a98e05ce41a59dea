package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"equiprent/internal/domain"
)

var ErrAlreadyFavorite = errors.New("equipment already in favorites")

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, equipmentID int64) (*domain.Favorite, error) {
	exists, err := r.Exists(ctx, userID, equipmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyFavorite
	}

	m := favoriteModel{UserID: userID, EquipmentID: equipmentID}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Favorite{
		ID:          m.ID,
		UserID:      m.UserID,
		EquipmentID: m.EquipmentID,
		CreatedAt:   m.CreatedAt,
	}, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, equipmentID int64) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND equipment_id = ?", userID, equipmentID).
		Delete(&favoriteModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, equipmentID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&favoriteModel{}).
		Where("user_id = ? AND equipment_id = ?", userID, equipmentID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// ListByUser returns the user's favorites newest first, each with its
// equipment record attached.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var ms []favoriteModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Favorite, 0, len(ms))
	for _, m := range ms {
		fav := domain.Favorite{
			ID:          m.ID,
			UserID:      m.UserID,
			EquipmentID: m.EquipmentID,
			CreatedAt:   m.CreatedAt,
		}
		var em equipmentModel
		if err := r.db.WithContext(ctx).First(&em, m.EquipmentID).Error; err == nil {
			fav.Equipment = toDomainEquipment(em)
		}
		out = append(out, fav)
	}
	return out, nil
}
