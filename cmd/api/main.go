package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hallbook/internal/config"
	"hallbook/internal/database"
	"hallbook/internal/middleware"
	"hallbook/internal/modules/auth"
	"hallbook/internal/modules/booking"
	"hallbook/internal/modules/events"
	"hallbook/internal/modules/expense"
	"hallbook/internal/modules/summary"
	jwtsvc "hallbook/internal/pkg/jwt"
	"hallbook/internal/pkg/logger"
	"hallbook/internal/repository"
	"hallbook/internal/store"
)

func main() {
	// Local development convenience; ignored when no .env exists.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	var (
		bookingRepo booking.BookingRepository
		expenseRepo expense.ExpenseRepository
	)

	// DATABASE_URL selects the backend: empty means the file-snapshot
	// store, anything else goes through gorm (sqlite path or postgres
	// DSN).
	if cfg.DatabaseURL == "" {
		s := store.New()
		persister := store.NewFilePersister(cfg.SnapshotPath, zlog)
		if err := persister.Attach(s); err != nil {
			zlog.Fatal("restore snapshot", zap.Error(err))
		}
		bookingRepo = store.NewBookingStore(s)
		expenseRepo = store.NewExpenseStore(s)
		zlog.Info("using snapshot store", zap.String("path", cfg.SnapshotPath))
	} else {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			zlog.Fatal("connect database", zap.Error(err))
		}
		if err := database.Migrate(db); err != nil {
			zlog.Fatal("migrate database", zap.Error(err))
		}
		bookingRepo = repository.NewBookingRepository(db)
		expenseRepo = repository.NewExpenseRepository(db)
		zlog.Info("using database", zap.String("dsn", cfg.DatabaseURL))
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authService, err := auth.NewService(cfg.AdminUsername, cfg.AdminPassword, j)
	if err != nil {
		zlog.Fatal("init auth", zap.Error(err))
	}
	authHandler := auth.NewHandler(authService)

	hub := events.NewHub()
	defer hub.Close()
	feed := events.NewFeed(hub, zlog)
	eventsHandler := events.NewHandler(hub, j, zlog)

	bookingService := booking.NewService(bookingRepo, expenseRepo, feed)
	bookingHandler := booking.NewHandler(bookingService)

	expenseService := expense.NewService(expenseRepo, bookingRepo, feed)
	expenseHandler := expense.NewHandler(expenseService)

	summaryService := summary.NewService(bookingRepo, expenseRepo)
	summaryHandler := summary.NewHandler(summaryService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			expenseHandler.RegisterRoutes(protected)
			summaryHandler.RegisterRoutes(protected)
		}
	}

	zlog.Info("listening", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
