package services

import (
	"strings"

	portsrepo "github.com/Wabuluka/storefront-geo-api/internal/core/ports/repositories"
	"github.com/Wabuluka/storefront-geo-api/internal/models"
	"github.com/shopspring/decimal"
)

// ShippingService quotes shipping against the static zone table. Shipping
// must always be quotable: unknown country codes fall through to the
// default zone rather than failing.
type ShippingService struct {
	zoneRepo portsrepo.ShippingZoneRepository
}

// NewShippingService creates a new ShippingService.
func NewShippingService(zoneRepo portsrepo.ShippingZoneRepository) *ShippingService {
	return &ShippingService{zoneRepo: zoneRepo}
}

// QuoteShipping resolves the zone for a country and prices the order total
// against it. Zone lookup order: exact table key, then the EU fallback zone
// for EU-list countries, then the default zone. An order total at or above
// the zone threshold ships free.
func (s *ShippingService) QuoteShipping(countryCode string, orderTotal decimal.Decimal) models.ShippingQuote {
	countryCode = strings.ToUpper(countryCode)
	zone := s.resolveZone(countryCode)

	isFree := orderTotal.GreaterThanOrEqual(zone.FreeThreshold)
	cost := zone.FlatRate
	if isFree {
		cost = decimal.Zero
	}

	return models.ShippingQuote{
		CountryCode:    countryCode,
		ShippingCost:   cost,
		IsFreeShipping: isFree,
		EstimatedDays:  zone.EstimatedDays,
	}
}

// ExactZone returns the zone for an exact table key, if present.
func (s *ShippingService) ExactZone(countryCode string) (models.ShippingZone, bool) {
	return s.zoneRepo.FindZone(countryCode)
}

// ListZones returns the full zone table including the "default" key.
func (s *ShippingService) ListZones() map[string]models.ShippingZone {
	return s.zoneRepo.ListZones()
}

func (s *ShippingService) resolveZone(countryCode string) models.ShippingZone {
	if zone, ok := s.zoneRepo.FindZone(countryCode); ok {
		return zone
	}
	if s.zoneRepo.IsEUCountry(countryCode) {
		return s.zoneRepo.EUZone()
	}
	return s.zoneRepo.DefaultZone()
}
