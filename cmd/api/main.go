package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stylique/internal/config"
	"stylique/internal/database"
	"stylique/internal/events"
	"stylique/internal/handler"
	"stylique/internal/metrics"
	"stylique/internal/repository"
	"stylique/internal/router"
	"stylique/internal/service"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "stylique-api")
	logger.Info().Msg("starting stylique API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, database.MigrateUp, logger); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	publisher, err := events.NewPublisher(ctx, cfg.Kafka, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize order event publisher: %w", err)
	}
	defer publisher.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	productRepo := repository.NewProductRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)

	stockValidator := service.NewStockValidator(productRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)
	orderService := service.NewOrderService(
		orderRepo,
		productRepo,
		stockValidator,
		publisher,
		m,
		service.OrderOptions{ReserveStock: cfg.Checkout.ReserveStock},
		logger,
	)
	customerService := service.NewCustomerService(customerRepo, logger)

	mux := router.New(router.Handlers{
		Product:  handler.NewProductHandler(productService, logger),
		Review:   handler.NewReviewHandler(reviewService, logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Customer: handler.NewCustomerHandler(customerService, logger),
		Health:   handler.NewHealthHandler(pool, logger),
	}, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Metrics:        m,
		Gatherer:       prometheus.DefaultGatherer,
	}, logger)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Bool("reserve_stock", cfg.Checkout.ReserveStock).
			Bool("order_events", cfg.Kafka.Enabled()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
