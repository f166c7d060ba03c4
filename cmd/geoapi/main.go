package main

import (
	"log/slog"
	"os"

	"github.com/Wabuluka/storefront-geo-api/internal/adapters/geoip"
	"github.com/Wabuluka/storefront-geo-api/internal/adapters/refdata"
	portsrepo "github.com/Wabuluka/storefront-geo-api/internal/core/ports/repositories"
	"github.com/Wabuluka/storefront-geo-api/internal/core/services"
	"github.com/Wabuluka/storefront-geo-api/internal/handlers"
	"github.com/Wabuluka/storefront-geo-api/internal/middleware"
	"github.com/Wabuluka/storefront-geo-api/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Storefront Geo API
// @version 1.0
// @description Public geolocation, shipping and currency endpoints for the storefront.

// @host localhost:8080
// @BasePath /api/geo
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the storefront)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		r.Use(cors.New(corsConfig))
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reference tables are built once here and only read afterwards.
	repos := portsrepo.RepositoryProvider{
		CurrencyRepo:        refdata.NewCurrencyRepository(),
		CountryCurrencyRepo: refdata.NewCountryCurrencyRepository(),
		ShippingZoneRepo:    refdata.NewShippingZoneRepository(),
		GeoIPClient:         geoip.NewClient(cfg.GeoIPBaseURL, cfg.GeoIPTimeout),
	}

	serviceContainer := services.NewServiceContainer(repos)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
