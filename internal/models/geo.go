package models

// GeoInfo is the best-effort location resolved for a client IP.
// It lives for a single request/response cycle and is never persisted.
type GeoInfo struct {
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"` // ISO 3166-1 alpha-2
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	Timezone    string `json:"timezone"`
	Currency    string `json:"currency"`
}
