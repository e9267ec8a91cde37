// Package main is the entry point for the Colibrí point-of-sale API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"colibri/internal/config"
	"colibri/internal/core/numerator"
	"colibri/internal/domain/audit"
	"colibri/internal/domain/auth"
	"colibri/internal/domain/cart"
	"colibri/internal/domain/catalog"
	"colibri/internal/domain/orders"
	"colibri/internal/domain/reports"
	"colibri/internal/domain/sales"
	"colibri/internal/infrastructure/http/v1/handlers"
	"colibri/internal/infrastructure/storage/memory"
	"colibri/internal/infrastructure/storage/postgres"
	"colibri/pkg/logger"

	v1 "colibri/internal/infrastructure/http/v1"
)

// backends bundles the storage-driver-specific pieces behind the domain
// interfaces.
type backends struct {
	catalogRepo catalog.Repository
	orderRepo   orders.Repository
	saleRepo    sales.Repository
	userRepo    auth.UserRepository
	numerator   numerator.Generator
	auditor     audit.Recorder
	auditReader audit.Reader
	readyCheck  handlers.ReadyChecker
	close       func()
}

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Infow("starting colibri server", "driver", cfg.StorageDriver)

	store, err := buildBackends(ctx, cfg, log)
	if err != nil {
		log.Fatalw("failed to initialize storage", "error", err)
	}
	defer store.close()

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(cfg.JWTSecret))

	catalogService := catalog.NewService(store.catalogRepo, store.auditor)
	carts := cart.NewManager()

	router := v1.NewRouter(v1.RouterConfig{
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    auth.NewService(store.userRepo, jwtService),
		CatalogService: catalogService,
		CartManager:    carts,
		OrderService:   orders.NewService(store.orderRepo, store.numerator, store.auditor),
		SaleService:    sales.NewService(store.saleRepo, catalogService, carts, store.numerator, store.auditor),
		ReportService:  reports.NewService(store.catalogRepo, store.orderRepo, store.saleRepo, cfg.LowStockThreshold),
		AuditReader:    store.auditReader,
		ReadyCheck:     store.readyCheck,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func buildBackends(ctx context.Context, cfg config.Config, log *logger.Logger) (*backends, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}

		pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		log.Info("database connection established")

		txManager := postgres.NewTxManager(pool)

		auditor, err := postgres.NewAuditService(txManager)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init audit service: %w", err)
		}

		return &backends{
			catalogRepo: postgres.NewProductRepository(txManager),
			orderRepo:   postgres.NewOrderRepository(txManager),
			saleRepo:    postgres.NewSaleRepository(txManager),
			userRepo:    postgres.NewUserRepository(txManager),
			numerator:   postgres.NewNumeratorService(txManager),
			auditor:     auditor,
			auditReader: auditor,
			readyCheck:  pool.Ping,
			close:       pool.Close,
		}, nil

	case config.DriverMemory:
		store := memory.NewStore()
		if err := store.Seed(ctx); err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		log.Info("in-memory store seeded with demo data")

		return &backends{
			catalogRepo: store.Catalog,
			orderRepo:   store.Orders,
			saleRepo:    store.Sales,
			userRepo:    store.Users,
			numerator:   store.Numerator,
			auditor:     audit.Nop{},
			auditReader: audit.Nop{},
			close:       func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
