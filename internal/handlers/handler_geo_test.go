package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Wabuluka/storefront-geo-api/internal/adapters/refdata"
	portsrepo "github.com/Wabuluka/storefront-geo-api/internal/core/ports/repositories"
	"github.com/Wabuluka/storefront-geo-api/internal/core/services"
	"github.com/Wabuluka/storefront-geo-api/internal/dto"
	"github.com/Wabuluka/storefront-geo-api/internal/handlers"
	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/Wabuluka/storefront-geo-api/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GeoIPClient ---
type MockGeoIPClient struct {
	mock.Mock
}

func (m *MockGeoIPClient) Lookup(ctx context.Context, ip string) (models.GeoInfo, error) {
	args := m.Called(ctx, ip)
	return args.Get(0).(models.GeoInfo), args.Error(1)
}

var _ portsrepo.GeoIPClient = (*MockGeoIPClient)(nil)

// --- Test Suite ---
type GeoAPITestSuite struct {
	suite.Suite
	mockGeoIP *MockGeoIPClient
	engine    *gin.Engine
}

func (suite *GeoAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockGeoIP = new(MockGeoIPClient)

	repos := portsrepo.RepositoryProvider{
		CurrencyRepo:        refdata.NewCurrencyRepository(),
		CountryCurrencyRepo: refdata.NewCountryCurrencyRepository(),
		ShippingZoneRepo:    refdata.NewShippingZoneRepository(),
		GeoIPClient:         suite.mockGeoIP,
	}

	cfg := &config.Config{
		Port:         "8080",
		IsProduction: true, // no swagger routes under test
	}

	suite.engine = gin.New()
	handlers.RegisterRoutes(suite.engine, cfg, services.NewServiceContainer(repos))
}

func (suite *GeoAPITestSuite) doGet(url string, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.engine.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *GeoAPITestSuite) TestHealth() {
	w := suite.doGet("/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *GeoAPITestSuite) TestGetShippingQuote_Germany() {
	w := suite.doGet("/api/geo/shipping?countryCode=DE&orderTotal=50", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.ShippingQuoteResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal("DE", body.Data.CountryCode)
	suite.Equal(14.99, body.Data.ShippingCost)
	suite.False(body.Data.IsFreeShipping)
	suite.Equal("7-10", body.Data.EstimatedDays)
	suite.Equal(50.0, body.Data.AmountToFreeShipping)
}

func (suite *GeoAPITestSuite) TestGetShippingQuote_DefaultParams() {
	w := suite.doGet("/api/geo/shipping", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.ShippingQuoteResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal("US", body.Data.CountryCode)
	suite.Equal(5.99, body.Data.ShippingCost)
	suite.False(body.Data.IsFreeShipping)
	suite.Equal(50.0, body.Data.AmountToFreeShipping)
}

func (suite *GeoAPITestSuite) TestGetShippingQuote_InvalidOrderTotalCoercedToZero() {
	w := suite.doGet("/api/geo/shipping?countryCode=US&orderTotal=notanumber", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.ShippingQuoteResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal(5.99, body.Data.ShippingCost)
	suite.Equal(50.0, body.Data.AmountToFreeShipping)
}

// An EU country without an exact table entry is quoted against the EU zone
// (threshold 100) but the remaining-amount helper uses the 150 fallback, so
// the two can disagree. This pins the long-standing behavior.
func (suite *GeoAPITestSuite) TestGetShippingQuote_EUFallbackRemainingAmountMismatch() {
	w := suite.doGet("/api/geo/shipping?countryCode=IT&orderTotal=120", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.ShippingQuoteResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.True(body.Data.IsFreeShipping)
	suite.Equal(0.0, body.Data.ShippingCost)
	suite.Equal(30.0, body.Data.AmountToFreeShipping)
}

func (suite *GeoAPITestSuite) TestListShippingZones_ContainsExpectedKeys() {
	w := suite.doGet("/api/geo/shipping/zones", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data map[string]dto.ShippingZoneResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	for _, key := range []string{"US", "CA", "GB", "DE", "FR", "AU", "JP", "default"} {
		suite.Contains(body.Data, key)
	}
	suite.Equal(24.99, body.Data["default"].Rate)
	suite.Equal(150.0, body.Data["default"].FreeThreshold)
	suite.Equal("14-21", body.Data["default"].EstimatedDays)
}

func (suite *GeoAPITestSuite) TestListCurrencies() {
	w := suite.doGet("/api/geo/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data []dto.CurrencyResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.NotEmpty(body.Data)
	var usd *dto.CurrencyResponse
	for i := range body.Data {
		if body.Data[i].Code == "USD" {
			usd = &body.Data[i]
		}
	}
	suite.Require().NotNil(usd)
	suite.Equal("$", usd.Symbol)
	suite.Equal(1.0, usd.Rate)
}

func (suite *GeoAPITestSuite) TestConvertCurrency_USDToEUR() {
	w := suite.doGet("/api/geo/convert?amount=100&from=USD&to=EUR", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.ConvertCurrencyResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal(100.0, body.Data.Original)
	suite.Equal("USD", body.Data.OriginalCurrency)
	suite.Equal(92.0, body.Data.Converted)
	suite.Equal("EUR", body.Data.TargetCurrency)
	suite.Equal(0.92, body.Data.Rate)
}

func (suite *GeoAPITestSuite) TestConvertCurrency_MissingParamsDefaultToUSD() {
	w := suite.doGet("/api/geo/convert", nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.ConvertCurrencyResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal(0.0, body.Data.Original)
	suite.Equal("USD", body.Data.OriginalCurrency)
	suite.Equal(0.0, body.Data.Converted)
	suite.Equal("USD", body.Data.TargetCurrency)
	suite.Equal(1.0, body.Data.Rate)
}

func (suite *GeoAPITestSuite) TestDetectLocation_PrivateIPNoUpstreamCall() {
	w := suite.doGet("/api/geo/detect", map[string]string{"X-Forwarded-For": "192.168.1.1"})

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.DetectLocationResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal("United States", body.Data.Country)
	suite.Equal("US", body.Data.CountryCode)
	suite.Equal("America/New_York", body.Data.Timezone)
	suite.Equal("USD", body.Data.Currency)
	suite.Equal("$", body.Data.CurrencySymbol)
	suite.Equal("US Dollar", body.Data.CurrencyName)

	suite.mockGeoIP.AssertNumberOfCalls(suite.T(), "Lookup", 0)
}

func (suite *GeoAPITestSuite) TestDetectLocation_ResolvedLocation() {
	suite.mockGeoIP.On("Lookup", mock.Anything, "93.184.216.34").Return(models.GeoInfo{
		Country:     "Germany",
		CountryCode: "DE",
		City:        "Berlin",
		Region:      "Berlin",
		Timezone:    "Europe/Berlin",
		Currency:    "EUR",
	}, nil).Once()

	w := suite.doGet("/api/geo/detect", map[string]string{"X-Forwarded-For": "93.184.216.34, 70.41.3.18"})

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.DetectLocationResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal("Germany", body.Data.Country)
	suite.Equal("DE", body.Data.CountryCode)
	suite.Equal("Berlin", body.Data.City)
	suite.Equal("Europe/Berlin", body.Data.Timezone)
	suite.Equal("EUR", body.Data.Currency)
	suite.Equal("€", body.Data.CurrencySymbol)

	suite.mockGeoIP.AssertExpectations(suite.T())
}

func (suite *GeoAPITestSuite) TestDetectLocation_UpstreamFailureServesDefault() {
	suite.mockGeoIP.On("Lookup", mock.Anything, "203.0.113.9").Return(models.GeoInfo{}, assert.AnError).Once()

	w := suite.doGet("/api/geo/detect", map[string]string{"X-Real-IP": "203.0.113.9"})

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Data dto.DetectLocationResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))

	suite.Equal("US", body.Data.CountryCode)
	suite.Equal("USD", body.Data.Currency)

	suite.mockGeoIP.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestGeoAPI(t *testing.T) {
	suite.Run(t, new(GeoAPITestSuite))
}
