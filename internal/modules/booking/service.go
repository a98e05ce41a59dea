package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"equiprent/internal/domain"
	"equiprent/internal/pricing"
	"equiprent/internal/repository"
)

type Service struct {
	bookings  BookingRepository
	equipment EquipmentStore
	calc      pricing.Calculator
	notifs    NotificationSender
}

func NewService(bookings BookingRepository, equipment EquipmentStore, calc pricing.Calculator, notifs NotificationSender) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
		calc:      calc,
		notifs:    notifs,
	}
}

func parseDateRange(startStr, endStr string) (pricing.DateRange, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return pricing.DateRange{}, ErrValidation
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return pricing.DateRange{}, ErrValidation
	}
	return pricing.DateRange{Start: start, End: end}.Normalize(), nil
}

func (s *Service) rateCard(e *domain.Equipment) pricing.RateCard {
	return pricing.RateCard{
		PerDay:   e.PricePerDay,
		PerWeek:  e.PricePerWeek,
		PerMonth: e.PricePerMonth,
	}
}

// Quote prices a prospective rental without touching the calendar.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*pricing.Quote, error) {
	option, ok := domain.ParseDeliveryOption(req.DeliveryOption)
	if !ok {
		return nil, ErrValidation
	}

	r, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	eq, err := s.equipment.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	q, err := s.calc.Quote(s.rateCard(eq), r, option == domain.DeliveryCourier)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CheckAvailability answers the storefront date picker: does the
// candidate range collide with any blocking booking? This is advisory;
// the authoritative check runs inside the repository transaction on
// create and confirm.
func (s *Service) CheckAvailability(ctx context.Context, equipmentID int64, startStr, endStr string) (bool, error) {
	r, err := parseDateRange(startStr, endStr)
	if err != nil {
		return false, err
	}
	if r.Days() <= 0 {
		return false, pricing.ErrInvalidRange
	}

	existing, err := s.bookings.ListActiveForEquipment(ctx, equipmentID)
	if err != nil {
		return false, err
	}
	return !pricing.HasConflict(existing, equipmentID, r), nil
}

// CreateBooking validates the request, prices it, and inserts it through
// the repository's atomic check-and-insert. The new booking starts
// pending: it holds no calendar space until confirmed, but requests for
// ranges already blocked are rejected up front.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	option, ok := domain.ParseDeliveryOption(req.DeliveryOption)
	if !ok {
		return nil, ErrValidation
	}
	if option == domain.DeliveryCourier && req.DeliveryAddress == "" {
		return nil, ErrValidation
	}

	r, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	eq, err := s.equipment.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !eq.Available {
		return nil, ErrEquipmentUnavailable
	}

	quote, err := s.calc.Quote(s.rateCard(eq), r, option == domain.DeliveryCourier)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Reference:       uuid.NewString(),
		EquipmentID:     eq.ID,
		UserID:          userID,
		StartDate:       r.Start,
		EndDate:         r.End,
		TotalPrice:      quote.Total,
		Status:          domain.BookingPending,
		DeliveryOption:  option,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}

	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.notifs.BookingCreated(ctx, b)

	return b, nil
}

// GetBooking returns a booking visible to the actor: its owner or an
// admin.
func (s *Service) GetBooking(ctx context.Context, bookingID, actorID int64, actorIsAdmin bool) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actorID && !actorIsAdmin {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) GetMyBookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

// UpdateStatus drives the booking lifecycle. Admins may apply any
// transition the status graph allows; the booking's owner may only
// cancel, and only while the booking is pending or confirmed.
// Confirmation re-checks the calendar atomically: a pending request
// whose dates were taken in the meantime fails with ErrConflict.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, actorID int64, actorIsAdmin bool, newStatusStr string) (*domain.Booking, error) {
	newStatus, ok := domain.ParseBookingStatus(newStatusStr)
	if !ok {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !actorIsAdmin {
		if b.UserID != actorID {
			return nil, ErrForbidden
		}
		if newStatus != domain.BookingCancelled {
			return nil, ErrForbidden
		}
		// once the rental is running, only staff can cancel
		if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
			return nil, ErrForbidden
		}
	}

	if !domain.CanTransition(b.Status, newStatus) {
		return nil, domain.ErrInvalidStatusTransition
	}

	switch newStatus {
	case domain.BookingConfirmed:
		if err := s.bookings.ConfirmIfAvailable(ctx, b.ID); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return nil, ErrConflict
			}
			return nil, err
		}
	case domain.BookingCancelled:
		now := time.Now().UTC()
		if err := s.bookings.UpdateStatus(ctx, b.ID, newStatus, &now); err != nil {
			return nil, err
		}
	default:
		if err := s.bookings.UpdateStatus(ctx, b.ID, newStatus, nil); err != nil {
			return nil, err
		}
	}

	b, err = s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.notifs.BookingStatusChanged(ctx, b)

	return b, nil
}

// CancelBooking is the storefront's "cancel my booking" button.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID int64, actorIsAdmin bool) (*domain.Booking, error) {
	return s.UpdateStatus(ctx, bookingID, actorID, actorIsAdmin, string(domain.BookingCancelled))
}
