package handlers

import (
	"log/slog"

	"github.com/Wabuluka/storefront-geo-api/cmd/docs"
	portssvc "github.com/Wabuluka/storefront-geo-api/internal/core/ports/services"
	"github.com/Wabuluka/storefront-geo-api/internal/middleware"
	"github.com/Wabuluka/storefront-geo-api/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupGeoAPIRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupGeoAPIRoutes configures the public /api/geo group and delegates to
// the specific route registrations.
func setupGeoAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	geo := r.Group("/api/geo")

	// The endpoints are public and unauthenticated; a per-IP limit keeps
	// them inside the upstream geolocation quota.
	if limiterMiddleware := buildRateLimiter(cfg.RateLimit); limiterMiddleware != nil {
		geo.Use(limiterMiddleware)
	}

	registerGeoRoutes(geo, services.Geo, services.Currency)
	registerShippingRoutes(geo, services.Shipping)
	registerCurrencyRoutes(geo, services.Currency)
}

// buildRateLimiter creates the per-IP rate limit middleware from the
// configured "count-period" format, or nil when disabled/misconfigured.
func buildRateLimiter(format string) gin.HandlerFunc {
	if format == "" {
		return nil
	}
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT format, rate limiting disabled", slog.String("value", format), slog.String("error", err.Error()))
		return nil
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/geo"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
