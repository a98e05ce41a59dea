package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	args := m.Called(ctx, rev)
	if rev != nil && args.Error(0) == nil {
		rev.ID = 11
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) ListForEquipment(ctx context.Context, equipmentID int64) ([]domain.Review, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) HasUserReviewed(ctx context.Context, userID, equipmentID int64) (bool, error) {
	args := m.Called(ctx, userID, equipmentID)
	return args.Bool(0), args.Error(1)
}

type MockEquipmentStore struct {
	mock.Mock
}

func (m *MockEquipmentStore) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentStore) RefreshRatingStats(ctx context.Context, equipmentID int64) error {
	args := m.Called(ctx, equipmentID)
	return args.Error(0)
}

func TestService_CreateReview_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockEquipment := new(MockEquipmentStore)

	mockEquipment.On("GetByID", mock.Anything, int64(10)).Return(&domain.Equipment{ID: 10}, nil)
	mockReviews.On("HasUserReviewed", mock.Anything, int64(7), int64(10)).Return(false, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEquipment.On("RefreshRatingStats", mock.Anything, int64(10)).Return(nil)

	service := NewService(mockReviews, mockEquipment)

	rev, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{
		EquipmentID: 10,
		Rating:      5,
		Comment:     "Solid machine",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), rev.ID)
	mockEquipment.AssertCalled(t, "RefreshRatingStats", mock.Anything, int64(10))
}

func TestService_CreateReview_OnePerUser(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockEquipment := new(MockEquipmentStore)

	mockEquipment.On("GetByID", mock.Anything, int64(10)).Return(&domain.Equipment{ID: 10}, nil)
	mockReviews.On("HasUserReviewed", mock.Anything, int64(7), int64(10)).Return(true, nil)

	service := NewService(mockReviews, mockEquipment)

	_, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{
		EquipmentID: 10,
		Rating:      4,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReview_RatingOutOfRange(t *testing.T) {
	service := NewService(new(MockReviewRepository), new(MockEquipmentStore))

	_, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{EquipmentID: 10, Rating: 6})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateReview(context.Background(), 7, CreateReviewRequest{EquipmentID: 10, Rating: 0})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateReview_UnknownEquipment(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockEquipment := new(MockEquipmentStore)

	mockEquipment.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(mockReviews, mockEquipment)

	_, err := service.CreateReview(context.Background(), 7, CreateReviewRequest{EquipmentID: 404, Rating: 3})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteReview_OwnerAllowed(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockEquipment := new(MockEquipmentStore)

	mockReviews.On("GetByID", mock.Anything, int64(11)).Return(&domain.Review{ID: 11, UserID: 7, EquipmentID: 10}, nil)
	mockReviews.On("Delete", mock.Anything, int64(11)).Return(nil)
	mockEquipment.On("RefreshRatingStats", mock.Anything, int64(10)).Return(nil)

	service := NewService(mockReviews, mockEquipment)

	err := service.DeleteReview(context.Background(), 11, 7, false)

	require.NoError(t, err)
}

func TestService_DeleteReview_StrangerForbidden(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockEquipment := new(MockEquipmentStore)

	mockReviews.On("GetByID", mock.Anything, int64(11)).Return(&domain.Review{ID: 11, UserID: 7, EquipmentID: 10}, nil)

	service := NewService(mockReviews, mockEquipment)

	err := service.DeleteReview(context.Background(), 11, 42, false)

	assert.ErrorIs(t, err, ErrForbidden)
	mockReviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_DeleteReview_AdminAllowed(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockEquipment := new(MockEquipmentStore)

	mockReviews.On("GetByID", mock.Anything, int64(11)).Return(&domain.Review{ID: 11, UserID: 7, EquipmentID: 10}, nil)
	mockReviews.On("Delete", mock.Anything, int64(11)).Return(nil)
	mockEquipment.On("RefreshRatingStats", mock.Anything, int64(10)).Return(nil)

	service := NewService(mockReviews, mockEquipment)

	err := service.DeleteReview(context.Background(), 11, 42, true)

	require.NoError(t, err)
}
