// Package database opens the booking datastore. Production runs on
// PostgreSQL (the overlap exclusion constraint needs it); anything that is
// not a postgres DSN is treated as a SQLite file path, which covers local
// development and the test suites without CGO.
package database

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

// DefaultDSN is the SQLite file used when DATABASE_URL is not set.
const DefaultDSN = "hotel.db"

func Connect(dsn string) (*gorm.DB, error) {
	// Check-in and check-out instants are anchored to UTC throughout the
	// domain; keep gorm's own timestamps on the same clock.
	cfg := &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}
