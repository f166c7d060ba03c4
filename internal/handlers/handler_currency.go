package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/Wabuluka/storefront-geo-api/internal/core/ports/services"
	"github.com/Wabuluka/storefront-geo-api/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	rg.GET("/currencies", h.listCurrencies)
	rg.GET("/convert", h.convertCurrency)
}

// listCurrencies godoc
// @Summary List all supported currencies
// @Description Dumps the static currency table with USD exchange rates.
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.DataEnvelope{data=[]dto.CurrencyResponse}
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies()
	c.JSON(http.StatusOK, dto.DataEnvelope{Data: dto.ToListCurrencyResponse(currencies)})
}

// convertCurrency godoc
// @Summary Convert an amount between currencies
// @Description Converts via USD using the static rate table. Unknown source codes are treated as USD; unknown target codes return the amount unchanged.
// @Tags currencies
// @Produce  json
// @Param   amount query number false "Amount in the source currency" default(0)
// @Param   from query string false "Source currency code" default(USD)
// @Param   to query string false "Target currency code" default(USD)
// @Success 200 {object} dto.DataEnvelope{data=dto.ConvertCurrencyResponse}
// @Router /convert [get]
func (h *currencyHandler) convertCurrency(c *gin.Context) {
	amount := parseDecimalQuery(c.Query("amount"))
	from := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("from", "USD")))
	if from == "" {
		from = "USD"
	}
	to := strings.ToUpper(strings.TrimSpace(c.DefaultQuery("to", "USD")))
	if to == "" {
		to = "USD"
	}

	converted, rate := h.currencyService.ConvertBetween(amount, from, to)

	c.JSON(http.StatusOK, dto.DataEnvelope{Data: dto.ToConvertCurrencyResponse(amount, from, converted, to, rate)})
}
