package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/Wabuluka/storefront-geo-api/internal/core/ports/services"
	"github.com/Wabuluka/storefront-geo-api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// fallbackFreeShippingThreshold is the remaining-amount threshold used when
// the country has no exact zone entry. Note this deliberately ignores the
// EU fallback zone's lower threshold: for an EU country without an exact
// entry the reported remaining amount can disagree with the quoted zone.
var fallbackFreeShippingThreshold = decimal.NewFromInt(150)

// shippingHandler handles HTTP requests related to shipping quotes.
type shippingHandler struct {
	shippingService portssvc.ShippingSvcFacade
}

// newShippingHandler creates a new shippingHandler.
func newShippingHandler(ss portssvc.ShippingSvcFacade) *shippingHandler {
	return &shippingHandler{shippingService: ss}
}

// registerShippingRoutes registers routes related to shipping.
func registerShippingRoutes(rg *gin.RouterGroup, shippingService portssvc.ShippingSvcFacade) {
	h := newShippingHandler(shippingService)

	shipping := rg.Group("/shipping")
	{
		shipping.GET("", h.getShippingQuote)
		shipping.GET("/zones", h.listShippingZones)
	}
}

// getShippingQuote godoc
// @Summary Quote shipping for a country and order total
// @Description Resolves the shipping zone (exact country, EU fallback, default) and prices the order. Unknown countries quote the default zone; this endpoint never rejects input.
// @Tags shipping
// @Produce  json
// @Param   countryCode query string false "ISO 3166-1 alpha-2 country code" default(US)
// @Param   orderTotal query number false "Order subtotal in USD" default(0)
// @Success 200 {object} dto.DataEnvelope{data=dto.ShippingQuoteResponse}
// @Router /shipping [get]
func (h *shippingHandler) getShippingQuote(c *gin.Context) {
	countryCode := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("countryCode", "US")))
	if countryCode == "" {
		countryCode = "US"
	}
	orderTotal := parseDecimalQuery(c.Query("orderTotal"))

	quote := h.shippingService.QuoteShipping(countryCode, orderTotal)

	threshold := fallbackFreeShippingThreshold
	if zone, ok := h.shippingService.ExactZone(countryCode); ok {
		threshold = zone.FreeThreshold
	}
	amountToFree := decimal.Max(decimal.Zero, threshold.Sub(orderTotal))

	c.JSON(http.StatusOK, dto.DataEnvelope{Data: dto.ToShippingQuoteResponse(quote, amountToFree)})
}

// listShippingZones godoc
// @Summary List all shipping zones
// @Description Dumps the static zone table, including the "default" sentinel entry.
// @Tags shipping
// @Produce  json
// @Success 200 {object} dto.DataEnvelope{data=map[string]dto.ShippingZoneResponse}
// @Router /shipping/zones [get]
func (h *shippingHandler) listShippingZones(c *gin.Context) {
	zones := h.shippingService.ListZones()
	c.JSON(http.StatusOK, dto.DataEnvelope{Data: dto.ToShippingZonesResponse(zones)})
}
