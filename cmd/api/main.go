package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/auth"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/cart"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/catalog"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/config"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/database"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/handler"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/kv"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/order"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/pricing"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/repository"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/router"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/seed"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/service"
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

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Initialize the state backend for catalogue, cart and order snapshots
	var state kv.Store
	switch cfg.State.Backend {
	case "redis":
		state, err = kv.NewRedisStore(kv.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
	default:
		state, err = kv.NewFileStore(cfg.State.DataDir, logger)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize state backend: %w", err)
	}
	defer state.Close()

	// Initialize stores
	catalogStore := catalog.NewStore(ctx, state, catalog.SeedProducts(), logger)
	orderStore := order.NewStore(ctx, state, logger)
	cartManager := cart.NewManager(catalogStore, state, logger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	archiveRepo := repository.NewOrderArchiveRepository(pool, logger)

	// Seed the demo accounts when they are missing
	if err := seed.DemoUsers(ctx, userRepo, logger); err != nil {
		return fmt.Errorf("failed to seed demo users: %w", err)
	}

	// Initialize services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	calculator := pricing.NewCalculator(cfg.Checkout.TaxPercent)
	authService := service.NewAuthService(userRepo, tokens, logger)
	wishlistService := service.NewWishlistService(userRepo, logger)
	checkoutService := service.NewCheckoutService(orderStore, catalogStore, calculator, cartManager, archiveRepo, logger)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	productHandler := handler.NewProductHandler(catalogStore, logger)
	cartHandler := handler.NewCartHandler(cartManager, logger)
	orderHandler := handler.NewOrderHandler(checkoutService, orderStore, logger)
	wishlistHandler := handler.NewWishlistHandler(wishlistService, logger)

	// Initialize router
	mux := router.New(authHandler, productHandler, cartHandler, orderHandler, wishlistHandler, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
