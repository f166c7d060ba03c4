package dto

import (
	"github.com/Wabuluka/storefront-geo-api/internal/models"
)

// DetectLocationResponse defines the data returned for IP location detection.
type DetectLocationResponse struct {
	Country        string `json:"country"`
	CountryCode    string `json:"countryCode"`
	City           string `json:"city,omitempty"`
	Region         string `json:"region,omitempty"`
	Timezone       string `json:"timezone"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currencySymbol"`
	CurrencyName   string `json:"currencyName"`
}

// ToDetectLocationResponse combines resolved geo data with the display
// currency for the detected country.
func ToDetectLocationResponse(geo models.GeoInfo, currency models.Currency) DetectLocationResponse {
	return DetectLocationResponse{
		Country:        geo.Country,
		CountryCode:    geo.CountryCode,
		City:           geo.City,
		Region:         geo.Region,
		Timezone:       geo.Timezone,
		Currency:       currency.CurrencyCode,
		CurrencySymbol: currency.Symbol,
		CurrencyName:   currency.Name,
	}
}
