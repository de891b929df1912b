package handlers

import (
	"fmt"

	"github.com/SscSPs/storefront_backend/cmd/docs"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/SscSPs/storefront_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.GET("/", getHome)
	r.GET("/health", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register public authentication routes
	RegisterAuthRoutes(r, services.Auth)

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	storage := CookieStorage(cfg.CookieDomain, cfg.IsProduction)

	v1 := r.Group("/api/v1")
	RegisterCurrencyRoutes(v1, service.Currency)
	RegisterExchangeRateRoutes(v1, service.ExchangeRate)
	RegisterPriceRoutes(v1, service.Price, service.Preference, storage)
	RegisterPreferenceRoutes(v1, service.Preference, service.Currency, storage)
	RegisterProductListRoutes(v1, "/compare", service.Comparison, storage)
	RegisterProductListRoutes(v1, "/wishlist", service.Wishlist, storage)
	RegisterSocialRoutes(v1, service.SocialFeed)

	// Payment and verification proxies share one per-IP budget.
	ipLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure rate limiter: %w", err)
	}
	limited := v1.Group("", middleware.RateLimit(ipLimiter))
	RegisterPaymentRoutes(limited, service.Payment)
	RegisterRecaptchaRoutes(limited, service.Recaptcha)

	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.AdminTokenSigner()))
	RegisterExchangeRateAdminRoutes(admin, service.ExchangeRate)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
