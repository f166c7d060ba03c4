package refdata

import "strings"

// CountryCurrencyRepository serves the static country→currency map.
// Many countries map to the same currency (all EU members to EUR).
type CountryCurrencyRepository struct {
	byCountry map[string]string
}

// NewCountryCurrencyRepository creates a repository over the built-in map.
func NewCountryCurrencyRepository() *CountryCurrencyRepository {
	byCountry := map[string]string{
		"US": "USD",
		"CA": "CAD",
		"GB": "GBP",
		"JP": "JPY",
		"KR": "KRW",
		"AU": "AUD",
		"CH": "CHF",
		"CN": "CNY",
		"IN": "INR",
		"MX": "MXN",
		"BR": "BRL",
		"SG": "SGD",
	}
	for _, euCountry := range euCountries {
		byCountry[euCountry] = "EUR"
	}
	return &CountryCurrencyRepository{byCountry: byCountry}
}

// CurrencyCodeForCountry returns the default currency code for a country.
func (r *CountryCurrencyRepository) CurrencyCodeForCountry(countryCode string) (string, bool) {
	code, ok := r.byCountry[strings.ToUpper(countryCode)]
	return code, ok
}
