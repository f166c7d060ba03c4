package dto

import (
	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// ShippingQuoteResponse defines the data returned for a shipping quote.
type ShippingQuoteResponse struct {
	CountryCode          string  `json:"countryCode"`
	ShippingCost         float64 `json:"shippingCost"`
	IsFreeShipping       bool    `json:"isFreeShipping"`
	EstimatedDays        string  `json:"estimatedDays"`
	AmountToFreeShipping float64 `json:"amountToFreeShipping"`
}

// ToShippingQuoteResponse converts a quote plus the remaining-to-free amount.
func ToShippingQuoteResponse(quote models.ShippingQuote, amountToFree decimal.Decimal) ShippingQuoteResponse {
	return ShippingQuoteResponse{
		CountryCode:          quote.CountryCode,
		ShippingCost:         quote.ShippingCost.InexactFloat64(),
		IsFreeShipping:       quote.IsFreeShipping,
		EstimatedDays:        quote.EstimatedDays,
		AmountToFreeShipping: amountToFree.InexactFloat64(),
	}
}

// ShippingZoneResponse defines the data returned for one zone table entry.
type ShippingZoneResponse struct {
	Rate          float64 `json:"rate"`
	FreeThreshold float64 `json:"freeThreshold"`
	EstimatedDays string  `json:"estimatedDays"`
}

// ToShippingZonesResponse converts the zone table dump.
func ToShippingZonesResponse(zones map[string]models.ShippingZone) map[string]ShippingZoneResponse {
	res := make(map[string]ShippingZoneResponse, len(zones))
	for code, zone := range zones {
		res[code] = ShippingZoneResponse{
			Rate:          zone.FlatRate.InexactFloat64(),
			FreeThreshold: zone.FreeThreshold.InexactFloat64(),
			EstimatedDays: zone.EstimatedDays,
		}
	}
	return res
}
