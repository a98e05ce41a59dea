package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if e != nil && args.Error(0) == nil {
		e.ID = 77
	}
	return args.Error(0)
}

func (m *MockEquipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) List(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.CategoryWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryWithCount), args.Error(1)
}

func sampleEquipment() domain.Equipment {
	return domain.Equipment{
		ID:          5,
		CategoryID:  1,
		Name:        "Concrete Mixer",
		NameRu:      "Бетономешалка",
		Description: "200L drum mixer",
		PricePerDay: 80,
		Available:   true,
	}
}

func TestService_ListEquipment_Localizes(t *testing.T) {
	mockEquipment := new(MockEquipmentRepository)
	mockCategories := new(MockCategoryRepository)

	mockEquipment.On("List", mock.Anything, mock.Anything).Return([]domain.Equipment{sampleEquipment()}, nil)

	service := NewService(mockEquipment, mockCategories, nil)

	views, err := service.ListEquipment(context.Background(), ListEquipmentQuery{Lang: "ru"})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Бетономешалка", views[0].Name)
	assert.Equal(t, "200L drum mixer", views[0].Description, "missing translation falls back to English")
}

func TestService_ListEquipment_ClampsPagination(t *testing.T) {
	mockEquipment := new(MockEquipmentRepository)
	mockCategories := new(MockCategoryRepository)

	mockEquipment.On("List", mock.Anything, mock.MatchedBy(func(f repository.EquipmentFilter) bool {
		return f.Limit == 50 && f.Offset == 0
	})).Return([]domain.Equipment{}, nil)

	service := NewService(mockEquipment, mockCategories, nil)

	_, err := service.ListEquipment(context.Background(), ListEquipmentQuery{Limit: 10000, Offset: -3})

	require.NoError(t, err)
	mockEquipment.AssertExpectations(t)
}

func TestService_GetEquipment_NotFound(t *testing.T) {
	mockEquipment := new(MockEquipmentRepository)
	mockCategories := new(MockCategoryRepository)

	mockEquipment.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	service := NewService(mockEquipment, mockCategories, nil)

	_, err := service.GetEquipment(context.Background(), 404, "en")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreateEquipment_RejectsNegativeRate(t *testing.T) {
	mockEquipment := new(MockEquipmentRepository)
	mockCategories := new(MockCategoryRepository)

	mockCategories.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1}, nil)

	service := NewService(mockEquipment, mockCategories, nil)

	_, err := service.CreateEquipment(context.Background(), EquipmentRequest{
		CategoryID:  1,
		Name:        "Bad Rates",
		PricePerDay: -10,
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockEquipment.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateEquipment_UnknownCategory(t *testing.T) {
	mockEquipment := new(MockEquipmentRepository)
	mockCategories := new(MockCategoryRepository)

	mockCategories.On("GetByID", mock.Anything, int64(999)).Return(nil, repository.ErrNotFound)

	service := NewService(mockEquipment, mockCategories, nil)

	_, err := service.CreateEquipment(context.Background(), EquipmentRequest{
		CategoryID:  999,
		Name:        "Orphan",
		PricePerDay: 10,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateEquipment_InvertedTiersStoredAnyway(t *testing.T) {
	mockEquipment := new(MockEquipmentRepository)
	mockCategories := new(MockCategoryRepository)

	mockCategories.On("GetByID", mock.Anything, int64(1)).Return(&domain.Category{ID: 1}, nil)
	mockEquipment.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockEquipment, mockCategories, nil)

	// week/7 > day: suspicious but legal
	e, err := service.CreateEquipment(context.Background(), EquipmentRequest{
		CategoryID:   1,
		Name:         "Pricey Weekly",
		PricePerDay:  10,
		PricePerWeek: 140,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), e.ID)
}

func TestService_ListCategories_Localizes(t *testing.T) {
	mockEquipment := new(MockEquipmentRepository)
	mockCategories := new(MockCategoryRepository)

	mockCategories.On("List", mock.Anything).Return([]domain.CategoryWithCount{
		{
			Category:       domain.Category{ID: 1, Slug: "excavators", Name: "Excavators", NameAz: "Ekskavatorlar"},
			EquipmentCount: 4,
		},
	}, nil)

	service := NewService(mockEquipment, mockCategories, nil)

	cats, err := service.ListCategories(context.Background(), "az")

	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Ekskavatorlar", cats[0].Name)
	assert.Equal(t, 4, cats[0].EquipmentCount)
}
