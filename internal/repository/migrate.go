package repository

import (
	"gorm.io/gorm"

	"equiprent/internal/database"
)

// Migrate creates the schema. On postgres it additionally installs the
// exclusion constraint that makes double booking impossible at the
// storage layer: two blocking bookings for the same equipment can never
// hold intersecting date ranges, no matter how the application races.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&categoryModel{},
		&equipmentModel{},
		&bookingModel{},
		&reviewModel{},
		&favoriteModel{},
	); err != nil {
		return err
	}

	if database.IsPostgres(db) {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}
		db.Exec(`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS idx_no_double_booking`)
		// Inclusive bounds ('[]') on purpose: a rental ending on day N
		// conflicts with one starting on day N.
		return db.Exec(`
ALTER TABLE bookings
ADD CONSTRAINT idx_no_double_booking
EXCLUDE USING gist (
    equipment_id WITH =,
    daterange(start_date::date, end_date::date, '[]') WITH &&
)
WHERE (status IN ('confirmed', 'active'))
`).Error
	}
	return nil
}
