package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Wabuluka/storefront-geo-api/internal/core/ports/services"
	"github.com/Wabuluka/storefront-geo-api/internal/dto"
	"github.com/Wabuluka/storefront-geo-api/internal/middleware"
	"github.com/Wabuluka/storefront-geo-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// geoHandler handles HTTP requests related to IP location detection.
type geoHandler struct {
	geoService      portssvc.GeoSvcFacade
	currencyService portssvc.CurrencyReaderSvc
}

// newGeoHandler creates a new geoHandler.
func newGeoHandler(gs portssvc.GeoSvcFacade, cs portssvc.CurrencyReaderSvc) *geoHandler {
	return &geoHandler{
		geoService:      gs,
		currencyService: cs,
	}
}

// registerGeoRoutes registers routes related to location detection.
func registerGeoRoutes(rg *gin.RouterGroup, geoService portssvc.GeoSvcFacade, currencyService portssvc.CurrencyReaderSvc) {
	h := newGeoHandler(geoService, currencyService)

	rg.GET("/detect", h.detectLocation)
}

// detectLocation godoc
// @Summary Detect the caller's location
// @Description Resolves the client IP to country, timezone and display currency. Always succeeds; private IPs and lookup failures yield US defaults.
// @Tags geo
// @Produce  json
// @Success 200 {object} dto.DataEnvelope{data=dto.DetectLocationResponse}
// @Router /detect [get]
func (h *geoHandler) detectLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ip := utils.ClientIPFromRequest(c)
	geo, resolved := h.geoService.ResolveLocation(c.Request.Context(), ip)
	if !resolved {
		logger.Debug("Serving default location data", slog.String("ip", ip))
	}

	currency := h.currencyService.CurrencyForCountry(geo.CountryCode)

	c.JSON(http.StatusOK, dto.DataEnvelope{Data: dto.ToDetectLocationResponse(geo, currency)})
}
