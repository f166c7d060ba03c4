package services

// ServiceContainer holds the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Geo      GeoSvcFacade
	Currency CurrencySvcFacade
	Shipping ShippingSvcFacade
}
