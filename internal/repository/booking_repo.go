package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"equiprent/internal/database"
	"equiprent/internal/domain"
)

// ErrConflict means the requested date range lost to a blocking booking
// during the transactional insert.
var ErrConflict = errors.New("equipment already booked for the requested dates")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		Reference:       m.Reference,
		EquipmentID:     m.EquipmentID,
		UserID:          m.UserID,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		TotalPrice:      m.TotalPrice,
		Status:          domain.BookingStatus(m.Status),
		DeliveryOption:  domain.DeliveryOption(m.DeliveryOption),
		DeliveryAddress: strVal(m.DeliveryAddress),
		Notes:           strVal(m.Notes),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		CancelledAt:     m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		Reference:       b.Reference,
		EquipmentID:     b.EquipmentID,
		UserID:          b.UserID,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		DeliveryOption:  string(b.DeliveryOption),
		DeliveryAddress: strPtr(b.DeliveryAddress),
		Notes:           strPtr(b.Notes),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}

func isOverlapConstraint(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}

// CreateIfAvailable inserts the booking if and only if no blocking booking
// overlaps its range. The check and the insert run in a single
// transaction with the equipment row locked, so two racing requests for
// the same equipment serialize; on postgres the idx_no_double_booking
// exclusion constraint backstops the lock. Fails with ErrConflict.
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		eq := tx.Model(&equipmentModel{}).Where("id = ?", b.EquipmentID)
		if database.IsPostgres(tx) {
			eq = eq.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var locked equipmentModel
		if err := eq.First(&locked).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var cnt int64
		err := tx.Model(&bookingModel{}).
			Where("equipment_id = ?", b.EquipmentID).
			Where("status IN ?", []string{string(domain.BookingConfirmed), string(domain.BookingActive)}).
			Where("start_date <= ? AND end_date >= ?", b.EndDate, b.StartDate).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrConflict
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			if isOverlapConstraint(err) {
				return ErrConflict
			}
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

// ConfirmIfAvailable moves a pending booking to confirmed inside a
// transaction, re-checking the calendar first: confirmation is the moment
// a booking starts blocking other renters, so it gets the same
// race-free treatment as creation.
func (r *BookingRepository) ConfirmIfAvailable(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		q := tx.Where("id = ?", id)
		if database.IsPostgres(tx) {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var cnt int64
		err := tx.Model(&bookingModel{}).
			Where("equipment_id = ? AND id <> ?", m.EquipmentID, m.ID).
			Where("status IN ?", []string{string(domain.BookingConfirmed), string(domain.BookingActive)}).
			Where("start_date <= ? AND end_date >= ?", m.EndDate, m.StartDate).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrConflict
		}

		if err := tx.Model(&bookingModel{}).Where("id = ?", id).
			Update("status", string(domain.BookingConfirmed)).Error; err != nil {
			if isOverlapConstraint(err) {
				return ErrConflict
			}
			return err
		}
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// ListActiveForEquipment returns the bookings that currently block the
// equipment's calendar, for use by the overlap predicate.
func (r *BookingRepository) ListActiveForEquipment(ctx context.Context, equipmentID int64) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Where("status IN ?", []string{string(domain.BookingConfirmed), string(domain.BookingActive)}).
		Order("start_date ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var ms []bookingModel
	if tx := q.Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	if tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, cancelledAt *time.Time) error {
	updates := map[string]any{"status": string(status)}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StartDue flips confirmed bookings whose rental period has begun to
// active. Used by the nightly lifecycle job.
func (r *BookingRepository) StartDue(ctx context.Context, today time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("start_date <= ?", today).
		Update("status", string(domain.BookingActive))
	return tx.RowsAffected, tx.Error
}

// CompleteElapsed flips active bookings whose rental period is over to
// completed.
func (r *BookingRepository) CompleteElapsed(ctx context.Context, today time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("status = ?", string(domain.BookingActive)).
		Where("end_date < ?", today).
		Update("status", string(domain.BookingCompleted))
	return tx.RowsAffected, tx.Error
}

// BookingStats is the admin dashboard aggregate.
type BookingStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	ActiveRentals     int64   `json:"active_rentals"`
	CompletedBookings int64   `json:"completed_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// Stats aggregates booking counts by status; revenue counts completed
// rentals only, the way the storefront dashboard always has.
func (r *BookingRepository) Stats(ctx context.Context) (*BookingStats, error) {
	var s BookingStats
	err := r.db.WithContext(ctx).Raw(`
SELECT
    COUNT(1) AS total_bookings,
    COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_bookings,
    COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active_rentals,
    COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0) AS completed_bookings,
    COALESCE(SUM(CASE WHEN status = 'completed' THEN total_price ELSE 0 END), 0) AS total_revenue
FROM bookings
`).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// EquipmentStats aggregates per-equipment booking and review figures.
type EquipmentStats struct {
	TotalBookings int64   `json:"total_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgRating     float64 `json:"avg_rating"`
	ReviewCount   int64   `json:"review_count"`
}

func (r *BookingRepository) StatsForEquipment(ctx context.Context, equipmentID int64) (*EquipmentStats, error) {
	var s EquipmentStats
	err := r.db.WithContext(ctx).Raw(`
SELECT
    (SELECT COUNT(1) FROM bookings WHERE equipment_id = ?) AS total_bookings,
    (SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE equipment_id = ? AND status = 'completed') AS total_revenue,
    (SELECT COALESCE(AVG(CAST(rating AS REAL)), 0) FROM reviews WHERE equipment_id = ?) AS avg_rating,
    (SELECT COUNT(1) FROM reviews WHERE equipment_id = ?) AS review_count
`, equipmentID, equipmentID, equipmentID, equipmentID).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
