package refdata_test

import (
	"testing"

	"github.com/Wabuluka/storefront-geo-api/internal/adapters/refdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyTable_USDAnchor(t *testing.T) {
	repo := refdata.NewCurrencyRepository()

	usd, ok := repo.FindCurrencyByCode("USD")
	require.True(t, ok)
	assert.True(t, usd.Rate.Equal(decimal.NewFromInt(1)), "USD rate must be exactly 1")

	// lookups are case-insensitive
	_, ok = repo.FindCurrencyByCode("usd")
	assert.True(t, ok)
}

func TestCurrencyTable_AllRatesPositive(t *testing.T) {
	repo := refdata.NewCurrencyRepository()

	currencies := repo.ListCurrencies()
	require.NotEmpty(t, currencies)
	for _, c := range currencies {
		assert.True(t, c.Rate.IsPositive(), c.CurrencyCode)
		assert.NotEmpty(t, c.Symbol, c.CurrencyCode)
		assert.NotEmpty(t, c.Name, c.CurrencyCode)
	}
}

func TestCountryCurrencyMap_MapsOntoCurrencyTable(t *testing.T) {
	countries := refdata.NewCountryCurrencyRepository()
	currencies := refdata.NewCurrencyRepository()

	// every mapped currency code must resolve in the currency table,
	// otherwise the double fallback in the service would mask a table bug
	for _, countryCode := range []string{"US", "CA", "GB", "JP", "KR", "AU", "CH", "CN", "IN", "MX", "BR", "SG", "DE", "FR", "IT", "ES", "NL"} {
		currencyCode, ok := countries.CurrencyCodeForCountry(countryCode)
		require.True(t, ok, countryCode)
		_, ok = currencies.FindCurrencyByCode(currencyCode)
		assert.True(t, ok, "%s -> %s", countryCode, currencyCode)
	}
}

func TestZoneTable_EveryLookupResolves(t *testing.T) {
	repo := refdata.NewShippingZoneRepository()

	zones := repo.ListZones()
	require.Contains(t, zones, refdata.DefaultZoneKey)

	for code, zone := range zones {
		assert.False(t, zone.FlatRate.IsNegative(), code)
		assert.False(t, zone.FreeThreshold.IsNegative(), code)
		assert.NotEmpty(t, zone.EstimatedDays, code)
	}

	assert.True(t, repo.IsEUCountry("IT"))
	assert.True(t, repo.IsEUCountry("de")) // case-insensitive
	assert.False(t, repo.IsEUCountry("US"))
}
