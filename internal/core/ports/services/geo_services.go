package services

import (
	"context"

	"github.com/Wabuluka/storefront-geo-api/internal/models"
)

// GeoSvcFacade defines the IP geolocation operation.
type GeoSvcFacade interface {
	// ResolveLocation maps a client IP to a best-effort location. It never
	// fails: private/local IPs and upstream failures both yield the US
	// default. The boolean reports whether the upstream lookup succeeded,
	// so callers and tests can tell resolved data from defaulted data.
	ResolveLocation(ctx context.Context, ip string) (models.GeoInfo, bool)
}
