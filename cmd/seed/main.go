package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"moorehotels/internal/database"
	"moorehotels/internal/domain"
	"moorehotels/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = database.DefaultDSN
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := repository.EnsureOverlapConstraint(db); err != nil {
		log.Printf("overlap constraint not installed: %v", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM audit_logs")
	db.Exec("DELETE FROM stay_records")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM guests")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	log.Println("Creating staff accounts...")
	userRepo := repository.NewUserRepository(db)
	staff := []struct {
		email, password, name, department string
		role                              domain.UserRole
	}{
		{"admin@moorehotels.com", "admin123", "Grace Moore", "Management", domain.RoleAdmin},
		{"manager@moorehotels.com", "manager123", "Daniel Okafor", "Front Office", domain.RoleManager},
		{"frontdesk@moorehotels.com", "staff123", "Amina Bello", "Front Desk", domain.RoleStaff},
	}
	for _, s := range staff {
		hash, _ := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		u := domain.User{
			Email:        s.email,
			PasswordHash: string(hash),
			Name:         s.name,
			Role:         s.role,
			Department:   s.department,
		}
		if err := userRepo.Create(ctx, &u); err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	log.Println("Creating rooms...")
	roomRepo := repository.NewRoomRepository(db)
	type roomPlan struct {
		category domain.RoomCategory
		name     string
		price    float64
		capacity int
		count    int
		floor    int
	}
	plans := []roomPlan{
		{domain.CategoryStandard, "Standard Room", 100, 2, 6, 1},
		{domain.CategoryBusiness, "Business Room", 150, 2, 4, 2},
		{domain.CategoryExecutive, "Executive Room", 220, 3, 3, 3},
		{domain.CategorySuite, "Moore Suite", 400, 4, 2, 4},
	}
	number := 0
	for _, plan := range plans {
		for i := 0; i < plan.count; i++ {
			number++
			room := domain.Room{
				RoomNumber:    fmt.Sprintf("%d%02d", plan.floor, number),
				Name:          fmt.Sprintf("%s %d", plan.name, i+1),
				Category:      plan.category,
				Floor:         plan.floor,
				Status:        domain.RoomAvailable,
				PricePerNight: plan.price,
				Capacity:      plan.capacity,
				IsOnline:      true,
				Amenities:     []string{"WiFi", "Air Conditioning", "Breakfast"},
			}
			if err := roomRepo.Create(ctx, &room); err != nil {
				log.Fatal("seed room failed:", err)
			}
		}
	}

	log.Printf("Seed complete: %d staff, %d rooms", len(staff), number)
}
