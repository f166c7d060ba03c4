package dto

import (
	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

// ToCurrencyResponse converts a models.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr models.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:   curr.CurrencyCode,
		Symbol: curr.Symbol,
		Name:   curr.Name,
		Rate:   curr.Rate.InexactFloat64(),
	}
}

// ToListCurrencyResponse converts a slice of models.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []models.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}

// ConvertCurrencyResponse defines the result of a currency conversion.
type ConvertCurrencyResponse struct {
	Original         float64 `json:"original"`
	OriginalCurrency string  `json:"originalCurrency"`
	Converted        float64 `json:"converted"`
	TargetCurrency   string  `json:"targetCurrency"`
	Rate             float64 `json:"rate"`
}

// ToConvertCurrencyResponse builds the conversion DTO from decimal amounts.
func ToConvertCurrencyResponse(original decimal.Decimal, fromCode string, converted decimal.Decimal, toCode string, rate decimal.Decimal) ConvertCurrencyResponse {
	return ConvertCurrencyResponse{
		Original:         original.InexactFloat64(),
		OriginalCurrency: fromCode,
		Converted:        converted.InexactFloat64(),
		TargetCurrency:   toCode,
		Rate:             rate.InexactFloat64(),
	}
}
