package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/dinespot/table-reservation/internal/config"
	"github.com/dinespot/table-reservation/internal/database"
	"github.com/dinespot/table-reservation/internal/handler"
	"github.com/dinespot/table-reservation/internal/metrics"
	"github.com/dinespot/table-reservation/internal/middleware"
	"github.com/dinespot/table-reservation/internal/queue"
	"github.com/dinespot/table-reservation/internal/repository"
	"github.com/dinespot/table-reservation/internal/router"
	"github.com/dinespot/table-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	restaurantRepo := repository.NewRestaurantRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	reviewRepo := repository.NewReviewRepo(db)

	reservationSvc := service.NewReservationService(restaurantRepo, reservationRepo, service.NewAMQPPublisher())

	httpMetrics := metrics.NewHTTPMetrics()
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(httpMetrics.Middleware())
	e.Use(middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb))

	router.Register(e, router.Handlers{
		Restaurants:  handler.NewRestaurantHandler(restaurantRepo, reviewRepo, cfg.Env),
		Reservations: handler.NewReservationHandler(reservationSvc, reservationRepo, cfg.Env),
		Reviews:      handler.NewReviewHandler(reviewRepo, restaurantRepo, cfg.Env),
		Admin:        handler.NewAdminHandler(cfg.AdminUser, cfg.AdminPassword, cfg.JWTSecret, cfg.BcryptCost, cfg.AccessTTLMin, cfg.Env),
	}, cfg.JWTSecret, cache)

	// Audit consumer runs for the life of the process and reconnects on its
	// own; a missing broker only costs the audit log.
	go queue.StartReservationAudit()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
