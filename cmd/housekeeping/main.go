package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"moorehotels/internal/database"
)

// Nightly cron. Rooms left in cleaning after turnover go back on sale, and
// the staff inbox is pruned of old read notifications.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	res1 := db.Exec(`UPDATE rooms SET status = 'available' WHERE status = 'cleaning'`)
	if res1.Error != nil {
		log.Fatalf("release cleaned rooms failed: %v", res1.Error)
	}

	res2 := db.Exec(`DELETE FROM notifications WHERE is_read AND created_at < CURRENT_TIMESTAMP - INTERVAL '30 days'`)
	if res2.Error != nil {
		log.Fatalf("prune notifications failed: %v", res2.Error)
	}

	log.Printf("housekeeping completed: rooms_released=%d notifications_pruned=%d", res1.RowsAffected, res2.RowsAffected)
}
