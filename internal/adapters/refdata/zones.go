package refdata

import (
	"strings"

	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultZoneKey is the sentinel key for the catch-all zone in the table dump.
const DefaultZoneKey = "default"

// euCountries is the fixed EU member list used for the EU shipping fallback
// and the EUR currency mapping.
var euCountries = []string{
	"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR",
	"DE", "GR", "HU", "IE", "IT", "LV", "LT", "LU", "MT", "NL",
	"PL", "PT", "RO", "SK", "SI", "ES", "SE",
}

// ShippingZoneRepository serves the static shipping zone table.
type ShippingZoneRepository struct {
	byCountry   map[string]models.ShippingZone
	euSet       map[string]struct{}
	euZone      models.ShippingZone
	defaultZone models.ShippingZone
}

// NewShippingZoneRepository creates a repository over the built-in zone table.
func NewShippingZoneRepository() *ShippingZoneRepository {
	byCountry := map[string]models.ShippingZone{
		"US": {FlatRate: decimal.RequireFromString("5.99"), FreeThreshold: decimal.NewFromInt(50), EstimatedDays: "3-5"},
		"CA": {FlatRate: decimal.RequireFromString("9.99"), FreeThreshold: decimal.NewFromInt(75), EstimatedDays: "5-7"},
		"GB": {FlatRate: decimal.RequireFromString("9.99"), FreeThreshold: decimal.NewFromInt(100), EstimatedDays: "5-7"},
		"DE": {FlatRate: decimal.RequireFromString("14.99"), FreeThreshold: decimal.NewFromInt(100), EstimatedDays: "7-10"},
		"FR": {FlatRate: decimal.RequireFromString("14.99"), FreeThreshold: decimal.NewFromInt(100), EstimatedDays: "7-10"},
		"AU": {FlatRate: decimal.RequireFromString("19.99"), FreeThreshold: decimal.NewFromInt(120), EstimatedDays: "10-14"},
		"JP": {FlatRate: decimal.RequireFromString("19.99"), FreeThreshold: decimal.NewFromInt(120), EstimatedDays: "10-14"},
	}

	euSet := make(map[string]struct{}, len(euCountries))
	for _, c := range euCountries {
		euSet[c] = struct{}{}
	}

	return &ShippingZoneRepository{
		byCountry: byCountry,
		euSet:     euSet,
		euZone: models.ShippingZone{
			FlatRate:      decimal.RequireFromString("14.99"),
			FreeThreshold: decimal.NewFromInt(100),
			EstimatedDays: "7-10",
		},
		defaultZone: models.ShippingZone{
			FlatRate:      decimal.RequireFromString("24.99"),
			FreeThreshold: decimal.NewFromInt(150),
			EstimatedDays: "14-21",
		},
	}
}

// FindZone retrieves the zone for an exact country-code key.
func (r *ShippingZoneRepository) FindZone(countryCode string) (models.ShippingZone, bool) {
	zone, ok := r.byCountry[strings.ToUpper(countryCode)]
	return zone, ok
}

// IsEUCountry reports whether the country code is in the fixed EU list.
func (r *ShippingZoneRepository) IsEUCountry(countryCode string) bool {
	_, ok := r.euSet[strings.ToUpper(countryCode)]
	return ok
}

// EUZone returns the fallback zone for EU countries without an exact entry.
func (r *ShippingZoneRepository) EUZone() models.ShippingZone {
	return r.euZone
}

// DefaultZone returns the sentinel zone used when nothing else matches.
func (r *ShippingZoneRepository) DefaultZone() models.ShippingZone {
	return r.defaultZone
}

// ListZones returns a copy of the full table, including the "default" key.
func (r *ShippingZoneRepository) ListZones() map[string]models.ShippingZone {
	out := make(map[string]models.ShippingZone, len(r.byCountry)+1)
	for code, zone := range r.byCountry {
		out[code] = zone
	}
	out[DefaultZoneKey] = r.defaultZone
	return out
}
