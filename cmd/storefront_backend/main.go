package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/storefront_backend/internal/adapters/instagram"
	"github.com/SscSPs/storefront_backend/internal/adapters/paypal"
	"github.com/SscSPs/storefront_backend/internal/adapters/ratesapi"
	"github.com/SscSPs/storefront_backend/internal/adapters/recaptcha"
	"github.com/SscSPs/storefront_backend/internal/adapters/stripe"
	"github.com/SscSPs/storefront_backend/internal/adapters/tiktok"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_backend/internal/core/services"
	"github.com/SscSPs/storefront_backend/internal/handlers"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/SscSPs/storefront_backend/internal/platform/config"
	"github.com/SscSPs/storefront_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/storefront_backend/internal/repositories/memory"
	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/SscSPs/storefront_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Storefront Backend API
// @version 1.0
// @description Currency, pricing, shopper list and payment proxy API for the storefront.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, repos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool, logger)

	svcContainer, err := services.NewServiceContainer(cfg, repos, setupGateways(cfg, logger))
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Install the first rate table before serving, then keep it current.
	svcContainer.RateRefresher.Load(ctx)
	go svcContainer.RateRefresher.Run(ctx)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.MetricsMiddleware(), middleware.PosthogMiddleware(posthogClient, cfg.IsProduction))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, svcContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// setupRepositories connects to PostgreSQL and applies migrations when PGSQL_URL
// is set; otherwise rate snapshots live in memory for the process lifetime.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, portsrepo.RepositoryProvider, error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory rate snapshot store")
		return nil, memory.NewRepositoryProvider(), nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, portsrepo.RepositoryProvider{}, err
	}

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return nil, portsrepo.RepositoryProvider{}, err
	}
	return dbPool, pgsql.NewRepositoryProvider(dbPool), nil
}

func setupGateways(cfg *config.Config, logger *slog.Logger) services.Gateways {
	timeout := cfg.UpstreamHTTPTimeout
	return services.Gateways{
		Rates:     ratesapi.New(cfg.RatesAPIURL, cfg.RatesHTTPTimeout, logger),
		Stripe:    stripe.New(cfg.StripeAPIURL, cfg.StripeSecretKey, timeout),
		PayPal:    paypal.New(cfg.PayPalAPIURL, cfg.PayPalClientID, cfg.PayPalClientSecret, timeout),
		Recaptcha: recaptcha.New(cfg.RecaptchaVerifyURL, cfg.RecaptchaSecret, timeout),
		Instagram: instagram.New(cfg.InstagramAPIURL, cfg.InstagramAccessToken, timeout),
		TikTok:    tiktok.New(cfg.TikTokBaseURL, cfg.TikTokUsername, timeout),
	}
}
