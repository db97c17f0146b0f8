package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/config"
	"github.com/tirtadhi/ZOEHotel/internal/handler"
	"github.com/tirtadhi/ZOEHotel/internal/middleware"
	"github.com/tirtadhi/ZOEHotel/internal/payment"
	"github.com/tirtadhi/ZOEHotel/internal/queue"
	"github.com/tirtadhi/ZOEHotel/internal/repository"
	"github.com/tirtadhi/ZOEHotel/internal/router"
	"github.com/tirtadhi/ZOEHotel/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Stores. Everything is in-memory and seeded at boot; Redis only
	// backs the session cache, rate limiter and response cache, and the
	// service runs degraded without it.
	rooms := repository.NewRoomStore(nil)
	users, err := repository.NewUserStore(cfg.BcryptCost, nil)
	if err != nil {
		log.Fatalf("seed users: %v", err)
	}
	bookings := repository.NewBookingStore(cfg.PaymentDeadline, nil)
	messages := repository.NewContactStore(nil)

	rdb := config.NewRedisClient()
	var sessions repository.SessionStore = repository.NewMemorySessionStore()
	if rdb != nil {
		store := repository.NewRedisSessionStore(rdb)
		sessions = store
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if u, err := store.CurrentUser(ctx); err == nil {
			log.Printf("restored session for %s", u.Email)
		}
		cancel()
	}

	gateway := payment.New(payment.Config{
		MerchantName: cfg.MerchantName,
		MerchantID:   cfg.MerchantID,
		Window:       cfg.PaymentDeadline,
		Delay:        cfg.GatewayDelay,
		Outcome:      payment.PercentOutcome(cfg.GatewaySuccess),
	})

	// Background workers: the reconciler sweeps expired pending
	// bookings, the consumer drains confirmation events from RabbitMQ.
	go service.NewReconciler(bookings, 0).Run(context.Background())
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer unavailable: %v", err)
		}
	}()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	authMW := middleware.JWTAuth(cfg.JWTSecret)
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, sessions), authMW)
	router.RegisterPublic(e, &handler.RoomHandler{Rooms: rooms}, &handler.ContactHandler{Messages: messages}, cacheMW)
	router.RegisterBooking(e,
		handler.NewBookingHandler(rooms, users, bookings),
		&handler.PaymentHandler{Gateway: gateway, Bookings: bookings, Users: users, Publish: service.PublishBookingConfirmed},
		authMW)
	router.RegisterAdmin(e, &handler.AdminHandler{Rooms: rooms, Bookings: bookings, Messages: messages}, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
