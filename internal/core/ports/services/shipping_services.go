package services

import (
	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// ShippingSvcFacade defines shipping quote operations. Every operation is
// total: unknown country codes resolve to the default zone, never an error.
type ShippingSvcFacade interface {
	// QuoteShipping resolves the zone for a country (exact match, then EU
	// fallback, then default) and prices the order total against it.
	QuoteShipping(countryCode string, orderTotal decimal.Decimal) models.ShippingQuote

	// ExactZone returns the zone for an exact table key, if present.
	// Used by callers that must distinguish exact entries from fallbacks.
	ExactZone(countryCode string) (models.ShippingZone, bool)

	// ListZones returns the full zone table including the "default" key.
	ListZones() map[string]models.ShippingZone
}
