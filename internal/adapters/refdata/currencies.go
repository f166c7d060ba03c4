package refdata

import (
	"strings"

	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// CurrencyRepository serves the static currency reference table. The table
// is built once at construction and only read afterwards.
type CurrencyRepository struct {
	byCode map[string]models.Currency
	order  []string
}

// NewCurrencyRepository creates a repository over the built-in currency table.
func NewCurrencyRepository() *CurrencyRepository {
	// Rates are units per 1 USD. Last updated 2024-01-15.
	table := []models.Currency{
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Rate: decimal.NewFromInt(1)},
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Rate: decimal.RequireFromString("0.92")},
		{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Rate: decimal.RequireFromString("0.79")},
		{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Rate: decimal.RequireFromString("149.50")},
		{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", Rate: decimal.RequireFromString("1.36")},
		{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Rate: decimal.RequireFromString("1.52")},
		{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc", Rate: decimal.RequireFromString("0.88")},
		{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", Rate: decimal.RequireFromString("7.24")},
		{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Rate: decimal.RequireFromString("83.12")},
		{CurrencyCode: "KRW", Symbol: "₩", Name: "South Korean Won", Rate: decimal.RequireFromString("1320.45")},
		{CurrencyCode: "MXN", Symbol: "MX$", Name: "Mexican Peso", Rate: decimal.RequireFromString("17.05")},
		{CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real", Rate: decimal.RequireFromString("4.97")},
		{CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar", Rate: decimal.RequireFromString("1.34")},
	}

	byCode := make(map[string]models.Currency, len(table))
	order := make([]string, 0, len(table))
	for _, c := range table {
		byCode[c.CurrencyCode] = c
		order = append(order, c.CurrencyCode)
	}
	return &CurrencyRepository{byCode: byCode, order: order}
}

// FindCurrencyByCode retrieves a currency by its ISO 4217 code.
func (r *CurrencyRepository) FindCurrencyByCode(currencyCode string) (models.Currency, bool) {
	c, ok := r.byCode[strings.ToUpper(currencyCode)]
	return c, ok
}

// ListCurrencies returns all supported currencies in table order.
func (r *CurrencyRepository) ListCurrencies() []models.Currency {
	out := make([]models.Currency, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.byCode[code])
	}
	return out
}
