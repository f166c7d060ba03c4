package services

import (
	"context"
	"log/slog"
	"strings"

	portsrepo "github.com/Wabuluka/storefront-geo-api/internal/core/ports/repositories"
	"github.com/Wabuluka/storefront-geo-api/internal/middleware"
	"github.com/Wabuluka/storefront-geo-api/internal/models"
)

// defaultGeoInfo is the location substituted for private IPs and failed
// lookups. Availability over accuracy: a wrong guess must not break
// browsing or checkout.
var defaultGeoInfo = models.GeoInfo{
	Country:     "United States",
	CountryCode: "US",
	Timezone:    "America/New_York",
	Currency:    "USD",
}

// GeoService resolves client IPs to locations via the upstream geolocation
// client, applying the US-default fallback policy.
type GeoService struct {
	geoIPClient portsrepo.GeoIPClient
}

// NewGeoService creates a new GeoService.
func NewGeoService(geoIPClient portsrepo.GeoIPClient) *GeoService {
	return &GeoService{geoIPClient: geoIPClient}
}

// ResolveLocation maps a client IP to a best-effort location. Private and
// loopback addresses short-circuit to the US default without an outbound
// call; upstream failures are logged and swallowed, yielding the same
// default. The boolean reports whether the upstream lookup succeeded.
func (s *GeoService) ResolveLocation(ctx context.Context, ip string) (models.GeoInfo, bool) {
	if isPrivateIP(ip) {
		return defaultGeoInfo, false
	}

	info, err := s.geoIPClient.Lookup(ctx, ip)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Geo lookup failed, using default location",
			slog.String("ip", ip),
			slog.String("error", err.Error()),
		)
		return defaultGeoInfo, false
	}
	return info, true
}

// isPrivateIP reports whether the address is loopback or in the private
// ranges the upstream service cannot resolve.
func isPrivateIP(ip string) bool {
	return ip == "127.0.0.1" ||
		ip == "::1" ||
		strings.HasPrefix(ip, "192.168.") ||
		strings.HasPrefix(ip, "10.")
}
