package models

import "github.com/shopspring/decimal"

// Currency represents a supported display currency.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Rate         decimal.Decimal `json:"rate"`         // units per 1 USD; exactly 1 for USD
}
