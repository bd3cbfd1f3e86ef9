package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appreturns "github.com/shoplite/backend/internal/application/returns"
	"github.com/shoplite/backend/internal/domain/finance"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/shared"
	"github.com/shoplite/backend/internal/infrastructure/cache"
	"github.com/shoplite/backend/internal/infrastructure/config"
	"github.com/shoplite/backend/internal/infrastructure/logger"
	"github.com/shoplite/backend/internal/infrastructure/persistence"
	"github.com/shoplite/backend/internal/interfaces/http/handler"
	"github.com/shoplite/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	idempotencyStore := newIdempotencyStore(cfg, log)
	defer idempotencyStore.Close()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	partyRepo := persistence.NewGormPartyRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	returnRepo := persistence.NewGormReturnRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	allocator := persistence.NewGormSequenceAllocator(db.DB)
	uow := persistence.NewGormUnitOfWork(db.DB)

	// Domain services
	stockLedger := inventory.NewStockLedger(stockRepo, movementRepo, cfg.Inventory.AllowNegativeStock)
	balanceLedger := finance.NewBalanceLedger(partyRepo)

	// Application services
	returnService := appreturns.NewService(
		uow, returnRepo, invoiceRepo, partyRepo, productRepo, paymentRepo,
		stockLedger, balanceLedger, allocator, log,
	)

	engine := router.New(router.Dependencies{
		Logger:           log,
		HealthHandler:    handler.NewHealthHandler(db),
		ReturnHandler:    handler.NewReturnHandler(returnService),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.Idempotency.TTL,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting",
			zap.String("app", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

func newIdempotencyStore(cfg *config.Config, log *zap.Logger) shared.IdempotencyStore {
	if !cfg.Redis.Enabled {
		log.Info("Using in-memory idempotency store")
		return cache.NewInMemoryIdempotencyStore()
	}

	store, err := cache.NewRedisIdempotencyStore(cache.RedisOptions{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory idempotency store", zap.Error(err))
		return cache.NewInMemoryIdempotencyStore()
	}
	log.Info("Using Redis idempotency store", zap.String("addr", cfg.Redis.Addr()))
	return store
}
