package services

import (
	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations over the currency table.
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all supported currencies.
	ListCurrencies() []models.Currency

	// CurrencyForCountry resolves the default currency for a country code,
	// falling back to the USD entry when the country or its mapped
	// currency is unknown.
	CurrencyForCountry(countryCode string) models.Currency
}

// CurrencyConverterSvc defines conversion and formatting operations.
type CurrencyConverterSvc interface {
	// Convert converts a USD amount into the target currency, rounded to
	// cents. Unknown target codes return the input unchanged.
	Convert(amountUSD decimal.Decimal, targetCode string) decimal.Decimal

	// ConvertBetween converts between two currencies by normalizing
	// through USD. It returns the converted amount and the effective rate.
	// Unknown source codes are treated as USD.
	ConvertBetween(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, decimal.Decimal)

	// Format renders an amount for display in the given currency. JPY and
	// KRW use zero fractional digits; unknown codes use USD formatting.
	Format(amount decimal.Decimal, currencyCode string) string
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyConverterSvc
}
