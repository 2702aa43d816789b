package repository

import (
	"moorehotels/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table this package owns. The
// Postgres-only overlap exclusion constraint is applied separately because
// gorm cannot express it.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&roomModel{},
		&guestModel{},
		&bookingModel{},
		&stayRecordModel{},
		&auditLogModel{},
		&domain.Notification{},
	)
}

// EnsureOverlapConstraint installs the exclusion constraint that backs the
// transactional conflict check on Postgres. No-op elsewhere.
func EnsureOverlapConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return db.Exec(`
CREATE EXTENSION IF NOT EXISTS btree_gist;
ALTER TABLE bookings DROP CONSTRAINT IF EXISTS idx_no_overbooking;
ALTER TABLE bookings ADD CONSTRAINT idx_no_overbooking
  EXCLUDE USING gist (
    room_id WITH =,
    tstzrange(check_in, check_out, '[)') WITH &&
  ) WHERE (status NOT IN ('cancelled', 'checked_out'));
`).Error
}
