package handlers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseDecimalQuery coerces a numeric query parameter the way the public
// endpoints promise: invalid or missing input silently becomes 0, never a
// 4xx response.
func parseDecimalQuery(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}
