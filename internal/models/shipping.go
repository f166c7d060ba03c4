package models

import "github.com/shopspring/decimal"

// ShippingZone is a shipping pricing tier keyed by country code.
type ShippingZone struct {
	FlatRate      decimal.Decimal `json:"rate"`
	FreeThreshold decimal.Decimal `json:"freeThreshold"`
	EstimatedDays string          `json:"estimatedDays"` // range, e.g. "3-5"
}

// ShippingQuote is the result of quoting shipping for a country and order total.
type ShippingQuote struct {
	CountryCode    string          `json:"countryCode"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	IsFreeShipping bool            `json:"isFreeShipping"`
	EstimatedDays  string          `json:"estimatedDays"`
}
