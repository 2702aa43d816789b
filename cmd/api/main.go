package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"moorehotels/internal/cache"
	"moorehotels/internal/database"
	"moorehotels/internal/middleware"
	"moorehotels/internal/modules/audit"
	"moorehotels/internal/modules/auth"
	"moorehotels/internal/modules/booking"
	"moorehotels/internal/modules/guests"
	"moorehotels/internal/modules/notification"
	"moorehotels/internal/modules/payment"
	"moorehotels/internal/modules/rooms"
	"moorehotels/internal/modules/stays"
	jwtsvc "moorehotels/internal/pkg/jwt"
	"moorehotels/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := envOr("DATABASE_URL", database.DefaultDSN)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	baseURL := envOr("APP_BASE_URL", "http://localhost:8080")

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}
	if err := repository.EnsureOverlapConstraint(db); err != nil {
		log.Printf("overlap constraint not installed: %v", err)
	}

	rdb := cache.Connect(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	stayRepo := repository.NewStayRecordRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	dispatcher := notification.NewDispatcher(256, 2, 3, time.Second)
	defer dispatcher.Shutdown()
	hub := notification.NewHub()
	defer hub.Close()
	mailer := notification.NewDevConsoleMailer(os.Getenv("DEV_EMAIL_LOG") != "")
	notifService := notification.NewService(notifRepo, hub, mailer, dispatcher)
	notifHandler := notification.NewHandler(notifService, hub, j)

	auditService := audit.NewService(auditRepo)
	auditHandler := audit.NewHandler(auditService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	guestService := guests.NewService(guestRepo)
	guestHandler := guests.NewHandler(guestService)

	gateway := payment.NewMockGateway(baseURL)
	paymentService := payment.NewService(bookingRepo, guestService, gateway, auditService, notifService)
	paymentHandler := payment.NewHandler(paymentService)

	bookingService := booking.NewService(
		bookingRepo,
		roomRepo,
		guestService,
		stayRepo,
		auditService,
		notifService,
		paymentService,
	)
	bookingHandler := booking.NewHandler(bookingService)

	roomService := rooms.NewService(roomRepo, bookingRepo, rdb)
	roomHandler := rooms.NewHandler(roomService)

	stayService := stays.NewService(stayRepo)
	stayHandler := stays.NewHandler(stayService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: guests book, look up, cancel, and pay without an account
		authHandler.RegisterPublicRoutes(v1)
		roomHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterPublicRoutes(v1)

		staff := v1.Group("/")
		staff.Use(middleware.Auth(j))
		{
			authHandler.RegisterStaffRoutes(staff)
			roomHandler.RegisterStaffRoutes(staff)
			bookingHandler.RegisterStaffRoutes(staff)
			paymentHandler.RegisterStaffRoutes(staff)
			guestHandler.RegisterRoutes(staff)
			stayHandler.RegisterStaffRoutes(staff)
			notifHandler.RegisterStaffRoutes(staff)

			admin := staff.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
				auditHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	notifHandler.RegisterWS(r)

	addr := ":" + envOr("PORT", "8080")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
