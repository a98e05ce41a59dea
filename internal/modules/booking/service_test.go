package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"equiprent/internal/domain"
	"equiprent/internal/pricing"
	"equiprent/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) ConfirmIfAvailable(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActiveForEquipment(ctx context.Context, equipmentID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	args := m.Called(ctx, id, status, cancelledAt)
	return args.Error(0)
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

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) BookingCreated(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockNotificationSender) BookingStatusChanged(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func testEquipment() *domain.Equipment {
	return &domain.Equipment{
		ID:            10,
		Name:          "Mini Excavator",
		PricePerDay:   150,
		PricePerWeek:  900,
		PricePerMonth: 3500,
		Available:     true,
	}
}

func newTestService(bookings *MockBookingRepository, equipment *MockEquipmentStore, notifs *MockNotificationSender) *Service {
	calc := pricing.NewCalculator(pricing.DefaultDeliveryFee, pricing.DefaultTaxRate)
	return NewService(bookings, equipment, calc, notifs)
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockEquipment.On("GetByID", mock.Anything, int64(10)).Return(testEquipment(), nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("BookingCreated", mock.Anything, mock.Anything).Return()

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	b, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		EquipmentID:    10,
		StartDate:      "2026-05-01",
		EndDate:        "2026-05-06", // 5 days, daily tier
		DeliveryOption: "pickup",
	})

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 885.0, b.TotalPrice) // 750 subtotal + 135 tax, no delivery fee
	assert.NotEmpty(t, b.Reference)
	mockNotifs.AssertCalled(t, "BookingCreated", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_Conflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockEquipment.On("GetByID", mock.Anything, int64(10)).Return(testEquipment(), nil)
	mockBookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(repository.ErrConflict)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		EquipmentID:    10,
		StartDate:      "2026-05-01",
		EndDate:        "2026-05-06",
		DeliveryOption: "pickup",
	})

	assert.ErrorIs(t, err, ErrConflict)
	mockNotifs.AssertNotCalled(t, "BookingCreated", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_EquipmentUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	eq := testEquipment()
	eq.Available = false
	mockEquipment.On("GetByID", mock.Anything, int64(10)).Return(eq, nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		EquipmentID:    10,
		StartDate:      "2026-05-01",
		EndDate:        "2026-05-06",
		DeliveryOption: "pickup",
	})

	assert.ErrorIs(t, err, ErrEquipmentUnavailable)
}

func TestService_CreateBooking_InvalidRange(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockEquipment.On("GetByID", mock.Anything, int64(10)).Return(testEquipment(), nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		EquipmentID:    10,
		StartDate:      "2026-05-06",
		EndDate:        "2026-05-01",
		DeliveryOption: "pickup",
	})

	assert.ErrorIs(t, err, pricing.ErrInvalidRange)
}

func TestService_CreateBooking_DeliveryNeedsAddress(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.CreateBooking(context.Background(), 7, CreateBookingRequest{
		EquipmentID:    10,
		StartDate:      "2026-05-01",
		EndDate:        "2026-05-06",
		DeliveryOption: "delivery",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Quote_WeeklyTierWithDelivery(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockEquipment.On("GetByID", mock.Anything, int64(10)).Return(testEquipment(), nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	q, err := service.Quote(context.Background(), QuoteRequest{
		EquipmentID:    10,
		StartDate:      "2026-05-01",
		EndDate:        "2026-05-11", // 10 days, weekly tier
		DeliveryOption: "delivery",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, q.Days)
	assert.InDelta(t, 1285.71, q.Subtotal, 0.01)
	assert.Equal(t, 50.0, q.DeliveryFee)
	assert.InDelta(t, 1567.14, q.Total, 0.01)
}

func TestService_UpdateStatus_OwnerCanCancelPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	pendingBooking := &domain.Booking{ID: 1, UserID: 7, Status: domain.BookingPending}
	cancelled := &domain.Booking{ID: 1, UserID: 7, Status: domain.BookingCancelled}
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(pendingBooking, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingCancelled, mock.Anything).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(cancelled, nil)
	mockNotifs.On("BookingStatusChanged", mock.Anything, mock.Anything).Return()

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	b, err := service.UpdateStatus(context.Background(), 1, 7, false, "cancelled")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_UpdateStatus_OwnerCannotCancelActiveRental(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingActive}, nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.UpdateStatus(context.Background(), 1, 7, false, "cancelled")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateStatus_OwnerCannotConfirm(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingPending}, nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.UpdateStatus(context.Background(), 1, 7, false, "confirmed")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateStatus_StrangerForbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingPending}, nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.UpdateStatus(context.Background(), 1, 42, false, "cancelled")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateStatus_PendingToCompletedRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingPending}, nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	// even an admin cannot skip straight to completed
	_, err := service.UpdateStatus(context.Background(), 1, 99, true, "completed")

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_AdminConfirmRechecksCalendar(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 7, Status: domain.BookingPending}, nil)
	mockBookings.On("ConfirmIfAvailable", mock.Anything, int64(1)).Return(repository.ErrConflict)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	_, err := service.UpdateStatus(context.Background(), 1, 99, true, "confirmed")

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_CheckAvailability(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEquipment := new(MockEquipmentStore)
	mockNotifs := new(MockNotificationSender)

	start := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	existing := []domain.Booking{{
		EquipmentID: 10,
		Status:      domain.BookingConfirmed,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 5),
	}}
	mockBookings.On("ListActiveForEquipment", mock.Anything, int64(10)).Return(existing, nil)

	service := newTestService(mockBookings, mockEquipment, mockNotifs)

	available, err := service.CheckAvailability(context.Background(), 10, "2026-05-12", "2026-05-20")
	require.NoError(t, err)
	assert.False(t, available)

	// existing booking ends May 15; a May 15 start shares the boundary
	available, err = service.CheckAvailability(context.Background(), 10, "2026-05-15", "2026-05-20")
	require.NoError(t, err)
	assert.False(t, available, "shared boundary date counts as a conflict")

	available, err = service.CheckAvailability(context.Background(), 10, "2026-05-16", "2026-05-20")
	require.NoError(t, err)
	assert.True(t, available)
}
