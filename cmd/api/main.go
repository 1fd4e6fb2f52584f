package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/travelmate-console/internal/config"
	httpDelivery "github.com/travelmate-console/internal/delivery/http"
	"github.com/travelmate-console/internal/delivery/http/handler"
	"github.com/travelmate-console/internal/domain/repository"
	"github.com/travelmate-console/internal/infrastructure/geosearch"
	"github.com/travelmate-console/internal/pkg/logger"
	"github.com/travelmate-console/internal/repository/cache"
	"github.com/travelmate-console/internal/repository/mongo"
	"github.com/travelmate-console/internal/repository/postgres"
	"github.com/travelmate-console/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting TravelMate Console")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("store_backend", cfg.Store.Backend),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 3. Connect to the record store backend
	var recordStore repository.RecordStore
	var closeStore func()

	switch cfg.Store.Backend {
	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
		recordStore = postgres.NewRecordStore(db)
		closeStore = func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}
		log.Info("PostgreSQL connected")
	case "mongo":
		db, err := mongo.New(&cfg.Mongo, log)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		if err := db.Health(ctx); err != nil {
			log.Fatal("MongoDB health check failed", zap.Error(err))
		}
		recordStore = mongo.NewRecordStore(db)
		closeStore = func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			if err := db.Close(closeCtx); err != nil {
				log.Error("Failed to close MongoDB connection", zap.Error(err))
			}
		}
		log.Info("MongoDB connected")
	default:
		log.Fatal("Unknown store backend", zap.String("backend", cfg.Store.Backend))
	}
	defer closeStore()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	geocoder := geosearch.NewClient(&cfg.Geosearch, log)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	catalogUC := usecase.NewCatalogUseCase(recordStore, cacheRepo, cfg, log)
	detailUC := usecase.NewDetailUseCase(recordStore, log)
	wizardUC := usecase.NewWizardUseCase(recordStore, geocoder, log)
	moderationUC := usecase.NewModerationUseCase(recordStore, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogUC, detailUC, log)
	wizardHandler := handler.NewWizardHandler(wizardUC, log)
	moderationHandler := handler.NewModerationHandler(moderationUC, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, catalogHandler, wizardHandler, moderationHandler)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
