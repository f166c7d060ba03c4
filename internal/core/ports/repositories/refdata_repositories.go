package repositories

import (
	"github.com/Wabuluka/storefront-geo-api/internal/models"
)

// CurrencyRepository defines read access to the currency reference table.
// The table is fixed at process start; there are no write operations.
type CurrencyRepository interface {
	// FindCurrencyByCode retrieves a currency by its ISO 4217 code.
	FindCurrencyByCode(currencyCode string) (models.Currency, bool)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies() []models.Currency
}

// CountryCurrencyRepository defines read access to the country→currency map.
type CountryCurrencyRepository interface {
	// CurrencyCodeForCountry returns the default currency code for an
	// ISO 3166-1 alpha-2 country code.
	CurrencyCodeForCountry(countryCode string) (string, bool)
}

// ShippingZoneRepository defines read access to the shipping zone table.
type ShippingZoneRepository interface {
	// FindZone retrieves the zone for an exact country-code key.
	FindZone(countryCode string) (models.ShippingZone, bool)

	// IsEUCountry reports whether the country code is in the fixed EU list.
	IsEUCountry(countryCode string) bool

	// EUZone returns the fallback zone for EU countries without an exact entry.
	EUZone() models.ShippingZone

	// DefaultZone returns the sentinel zone used when nothing else matches.
	DefaultZone() models.ShippingZone

	// ListZones returns the full table, including the "default" sentinel key.
	ListZones() map[string]models.ShippingZone
}
