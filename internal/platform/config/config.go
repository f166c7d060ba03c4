package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream IP geolocation service
	GeoIPBaseURL string
	GeoIPTimeout time.Duration

	// Rate limit applied to the public geo endpoints, in ulule/limiter
	// notation (e.g. "45-M" = 45 requests per minute). Mirrors the
	// upstream geolocation service's documented quota.
	RateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GEOIP_BASE_URL", "http://ip-api.com/json")
	viper.SetDefault("GEOIP_TIMEOUT", "5s")
	viper.SetDefault("RATE_LIMIT", "45-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.GeoIPBaseURL = viper.GetString("GEOIP_BASE_URL")
	if cfg.GeoIPBaseURL == "" {
		cfg.GeoIPBaseURL = "http://ip-api.com/json"
		log.Printf("Warning: GEOIP_BASE_URL not set. Defaulting to %s\n", cfg.GeoIPBaseURL)
	}

	geoIPTimeoutStr := viper.GetString("GEOIP_TIMEOUT")
	geoIPTimeout, err := time.ParseDuration(geoIPTimeoutStr)
	if err != nil {
		geoIPTimeout = 5 * time.Second
		if geoIPTimeoutStr != "" {
			log.Printf("Warning: Invalid value for GEOIP_TIMEOUT ('%s'). Defaulting to %s.\n", geoIPTimeoutStr, geoIPTimeout)
		}
	}
	cfg.GeoIPTimeout = geoIPTimeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "45-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
