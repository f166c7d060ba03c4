package services

import (
	portsrepo "github.com/Wabuluka/storefront-geo-api/internal/core/ports/repositories"
	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies lists currencies conventionally displayed without
// fractional digits.
var zeroDecimalCurrencies = map[string]struct{}{
	"JPY": {},
	"KRW": {},
}

// CurrencyService converts and formats amounts against the static currency
// table. Every operation is total: unknown codes resolve to documented
// fallbacks instead of errors, because pricing must always be renderable.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepository
	countryRepo  portsrepo.CountryCurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository, countryRepo portsrepo.CountryCurrencyRepository) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		countryRepo:  countryRepo,
	}
}

// Convert converts a USD amount into the target currency, rounded half-up
// to cents. An unknown target code returns the input unchanged.
func (s *CurrencyService) Convert(amountUSD decimal.Decimal, targetCode string) decimal.Decimal {
	target, ok := s.currencyRepo.FindCurrencyByCode(targetCode)
	if !ok {
		return amountUSD
	}
	return amountUSD.Mul(target.Rate).Round(2)
}

// ConvertBetween converts between two currencies by normalizing through
// USD first. An unknown source code is treated as USD (rate 1). The second
// return value is the effective from→to rate.
//
// Accuracy depends on all table rates sharing the same USD snapshot; there
// is no live refresh.
func (s *CurrencyService) ConvertBetween(amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, decimal.Decimal) {
	rateFrom := decimal.NewFromInt(1)
	if from, ok := s.currencyRepo.FindCurrencyByCode(fromCode); ok {
		rateFrom = from.Rate
	}
	rateTo := decimal.NewFromInt(1)
	if to, ok := s.currencyRepo.FindCurrencyByCode(toCode); ok {
		rateTo = to.Rate
	}

	amountUSD := amount.Div(rateFrom)
	return s.Convert(amountUSD, toCode), rateTo.Div(rateFrom)
}

// Format renders an amount for display in the given currency: symbol plus
// the amount at the currency's precision. JPY and KRW drop fractional
// digits; unknown codes fall back to USD formatting of the literal amount.
func (s *CurrencyService) Format(amount decimal.Decimal, currencyCode string) string {
	currency, ok := s.currencyRepo.FindCurrencyByCode(currencyCode)
	if !ok {
		currency = s.usdEntry()
	}

	precision := int32(2)
	if _, zero := zeroDecimalCurrencies[currency.CurrencyCode]; zero {
		precision = 0
	}
	return currency.Symbol + amount.StringFixed(precision)
}

// CurrencyForCountry resolves the default currency for a country code. The
// country map defaults to USD, and the table lookup defaults to the USD
// entry; the second hop guards against future table edits only.
func (s *CurrencyService) CurrencyForCountry(countryCode string) models.Currency {
	code, ok := s.countryRepo.CurrencyCodeForCountry(countryCode)
	if !ok {
		code = "USD"
	}
	currency, ok := s.currencyRepo.FindCurrencyByCode(code)
	if !ok {
		return s.usdEntry()
	}
	return currency
}

// ListCurrencies returns all supported currencies.
func (s *CurrencyService) ListCurrencies() []models.Currency {
	return s.currencyRepo.ListCurrencies()
}

func (s *CurrencyService) usdEntry() models.Currency {
	if usd, ok := s.currencyRepo.FindCurrencyByCode("USD"); ok {
		return usd
	}
	// Unreachable while the table keeps its USD invariant.
	return models.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Rate: decimal.NewFromInt(1)}
}
