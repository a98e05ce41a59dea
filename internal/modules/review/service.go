package review

import (
	"context"
	"errors"
	"log"

	"equiprent/internal/domain"
	"equiprent/internal/pkg/validator"
	"equiprent/internal/repository"
)

type Service struct {
	reviews   ReviewRepository
	equipment EquipmentStore
}

func NewService(reviews ReviewRepository, equipment EquipmentStore) *Service {
	return &Service{reviews: reviews, equipment: equipment}
}

// CreateReview stores a review and refreshes the equipment's denormalized
// rating. One review per user per equipment item.
func (s *Service) CreateReview(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	rev := &domain.Review{
		EquipmentID: req.EquipmentID,
		UserID:      userID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if fields := validator.Validate(rev); fields != nil {
		return nil, ErrValidation
	}

	if _, err := s.equipment.GetByID(ctx, req.EquipmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviewed, err := s.reviews.HasUserReviewed(ctx, userID, req.EquipmentID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}

	if err := s.equipment.RefreshRatingStats(ctx, req.EquipmentID); err != nil {
		// the review itself is saved; stats catch up on the next write
		log.Printf("WARN: failed to refresh rating stats for equipment %d: %v", req.EquipmentID, err)
	}

	return rev, nil
}

func (s *Service) ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.Review, error) {
	return s.reviews.ListForEquipment(ctx, equipmentID)
}

// DeleteReview removes a review. Owners may delete their own; admins any.
func (s *Service) DeleteReview(ctx context.Context, reviewID, actorID int64, actorIsAdmin bool) error {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rev.UserID != actorID && !actorIsAdmin {
		return ErrForbidden
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.equipment.RefreshRatingStats(ctx, rev.EquipmentID); err != nil {
		log.Printf("WARN: failed to refresh rating stats for equipment %d: %v", rev.EquipmentID, err)
	}
	return nil
}
