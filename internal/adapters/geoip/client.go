package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Wabuluka/storefront-geo-api/internal/apperrors"
	"github.com/Wabuluka/storefront-geo-api/internal/models"
)

// lookupFields is the field list requested from the upstream service.
const lookupFields = "status,message,country,countryCode,city,regionName,timezone,currency"

// lookupResponse mirrors the ip-api.com JSON body.
type lookupResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	City        string `json:"city"`
	RegionName  string `json:"regionName"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
}

// Client calls the third-party IP geolocation HTTP service. Failures are
// reported as wrapped apperrors.ErrUpstreamLookup; the caller decides what
// to substitute.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a geolocation client against the given base URL
// (e.g. "http://ip-api.com/json").
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Lookup resolves an IP address to location data with one outbound call.
// Missing response fields are substituted with "Unknown"/"US"/"UTC".
func (c *Client) Lookup(ctx context.Context, ip string) (models.GeoInfo, error) {
	lookupURL := fmt.Sprintf("%s/%s?fields=%s", c.baseURL, url.PathEscape(ip), lookupFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return models.GeoInfo{}, fmt.Errorf("%w: building request: %v", apperrors.ErrUpstreamLookup, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.GeoInfo{}, fmt.Errorf("%w: %v", apperrors.ErrUpstreamLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.GeoInfo{}, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamLookup, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.GeoInfo{}, fmt.Errorf("%w: decoding response: %v", apperrors.ErrUpstreamLookup, err)
	}

	if body.Status != "success" {
		return models.GeoInfo{}, fmt.Errorf("%w: status %q (%s)", apperrors.ErrUpstreamLookup, body.Status, body.Message)
	}

	return models.GeoInfo{
		Country:     orDefault(body.Country, "Unknown"),
		CountryCode: orDefault(body.CountryCode, "US"),
		City:        body.City,
		Region:      body.RegionName,
		Timezone:    orDefault(body.Timezone, "UTC"),
		Currency:    orDefault(body.Currency, "USD"),
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
