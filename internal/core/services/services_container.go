package services

import (
	portsrepo "github.com/Wabuluka/storefront-geo-api/internal/core/ports/repositories"
	portssvc "github.com/Wabuluka/storefront-geo-api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Geo:      NewGeoService(repos.GeoIPClient),
		Currency: NewCurrencyService(repos.CurrencyRepo, repos.CountryCurrencyRepo),
		Shipping: NewShippingService(repos.ShippingZoneRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.GeoSvcFacade      = (*GeoService)(nil)
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.ShippingSvcFacade = (*ShippingService)(nil)
)
