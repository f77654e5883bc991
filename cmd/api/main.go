package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cozy-threads/internal/config"
	"cozy-threads/internal/database"
	"cozy-threads/internal/handler"
	"cozy-threads/internal/repository"
	"cozy-threads/internal/router"
	"cozy-threads/internal/service"
	"cozy-threads/internal/session"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting cozy-threads storefront")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Schema is created in place at startup; the sample catalogue is seeded
	// only when the products table is empty.
	if err := database.InitSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := database.Seed(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Session store: Redis when configured, otherwise in-process.
	var sessions session.Store
	if cfg.Redis.Enabled {
		redisStore, err := session.NewRedisStore(ctx, cfg.Redis.Addr, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		defer redisStore.Close()
		sessions = redisStore
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
	} else {
		sessions = session.NewMemoryStore()
		logger.Info().Msg("using in-memory session store (redis disabled)")
	}

	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	reviewRepo := repository.NewReviewRepository(pool, logger)

	catalogService := service.NewCatalogService(productRepo, reviewRepo, logger)
	cartService := service.NewCartService(sessions, productRepo, logger)
	checkoutService := service.NewCheckoutService(sessions, orderRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)

	pages, err := handler.NewPages(sessions, cartService, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize page renderer: %w", err)
	}

	productHandler := handler.NewProductHandler(catalogService, pages, logger)
	cartHandler := handler.NewCartHandler(cartService, pages, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, cartService, orderService, pages, logger)
	orderHandler := handler.NewOrderHandler(orderService, pages, logger)

	mux := router.New(productHandler, cartHandler, checkoutHandler, orderHandler, pages, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
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
