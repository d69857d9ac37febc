package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ninepines/service-booking/internal/application"
	"github.com/ninepines/service-booking/internal/config"
	"github.com/ninepines/service-booking/internal/events"
	"github.com/ninepines/service-booking/internal/handler"
	"github.com/ninepines/service-booking/internal/logger"
	"github.com/ninepines/service-booking/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, "service-booking")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting service-booking",
		zap.String("port", cfg.Port),
		zap.String("hotel", cfg.HotelName),
	)

	// Initialize repositories
	roomRepo := repository.NewRoomRepository()
	guestRepo := repository.NewGuestRepository()
	bookingRepo := repository.NewBookingRepository()

	// Initialize event publisher: Kafka when brokers are configured, log
	// only otherwise.
	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, zapLogger)
		zapLogger.Info("publishing booking events to kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	} else {
		publisher = events.NewLogPublisher(zapLogger)
	}
	defer publisher.Close()

	// Initialize application services
	roomService := application.NewRoomService(roomRepo, zapLogger)
	guestService := application.NewGuestService(guestRepo, zapLogger)
	billingService := application.NewBillingService(
		guestRepo,
		application.HotelInfo{Name: cfg.HotelName, Address: cfg.HotelAddress},
		cfg.LoyaltyDiscountPercent,
		zapLogger,
	)
	bookingService := application.NewBookingService(
		bookingRepo, roomRepo, guestRepo, billingService, publisher, zapLogger,
	)

	// Seed the room catalog
	seedRooms(zapLogger, roomService, cfg.SeedRooms)

	// Initialize HTTP handlers
	roomHandler := handler.NewRoomHandler(roomService)
	guestHandler := handler.NewGuestHandler(guestService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	adminHandler := handler.NewAdminHandler(bookingService, "service-booking")

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(handler.RecoveryMiddleware(zapLogger))
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.LoggerMiddleware(zapLogger))
	router.Use(handler.CORSMiddleware())

	adminHandler.RegisterHealth(router)

	apiV1 := router.Group("/api/v1")
	roomHandler.RegisterRoutes(apiV1)
	guestHandler.RegisterRoutes(apiV1)
	bookingHandler.RegisterRoutes(apiV1)
	adminHandler.RegisterRoutes(apiV1)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down service-booking...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("service-booking stopped")
}

// seedRooms registers the configured catalog. A room that fails to seed is
// logged and skipped; the hotel can still run with a partial catalog.
func seedRooms(zapLogger *zap.Logger, roomService *application.RoomService, seeds []config.SeedRoom) {
	ctx := context.Background()
	for _, seed := range seeds {
		_, err := roomService.AddRoom(ctx, application.AddRoomRequest{
			Number:      seed.Number,
			Type:        seed.Type,
			NightlyRate: seed.NightlyRate,
		})
		if err != nil {
			zapLogger.Warn("skipping seed room",
				zap.String("number", seed.Number),
				zap.Error(err),
			)
		}
	}
}
