package repositories

import (
	"context"

	"github.com/Wabuluka/storefront-geo-api/internal/models"
)

// GeoIPClient is the outbound port for the third-party IP geolocation
// service. Implementations return apperrors.ErrUpstreamLookup (wrapped) on
// any failure; the fallback to default location data is a service-layer
// policy, not the client's.
type GeoIPClient interface {
	// Lookup resolves an IP address to location data with one outbound call.
	Lookup(ctx context.Context, ip string) (models.GeoInfo, error)
}
