package repositories

// RepositoryProvider bundles every outbound dependency the service layer
// needs, so wiring stays in one place.
type RepositoryProvider struct {
	CurrencyRepo        CurrencyRepository
	CountryCurrencyRepo CountryCurrencyRepository
	ShippingZoneRepo    ShippingZoneRepository
	GeoIPClient         GeoIPClient
}
