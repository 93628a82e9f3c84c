package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/api/metrics"
	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

const minSearchLength = 2

// GeocodingService wraps a Geocoder so that lookup failures degrade to empty
// results instead of failing the caller.
type GeocodingService struct {
	geocoder ports.Geocoder
	cache    ports.GeocodeCache // optional
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewGeocodingService builds the facade. cache may be nil.
func NewGeocodingService(geocoder ports.Geocoder, cache ports.GeocodeCache, cacheTTL time.Duration, logger zerolog.Logger) *GeocodingService {
	return &GeocodingService{
		geocoder: geocoder,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// SearchCities returns candidate places for query. Queries shorter than two
// characters and upstream failures both yield an empty list.
func (s *GeocodingService) SearchCities(ctx context.Context, query string) []domain.City {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLength {
		return []domain.City{}
	}

	cities, err := s.geocoder.Search(ctx, query)
	if err != nil {
		metrics.GeocoderRequestsTotal.WithLabelValues("search", "error").Inc()
		s.logger.Warn().Err(err).Str("query", query).Msg("city search failed")
		return []domain.City{}
	}
	if len(cities) == 0 {
		metrics.GeocoderRequestsTotal.WithLabelValues("search", "empty").Inc()
		return []domain.City{}
	}

	metrics.GeocoderRequestsTotal.WithLabelValues("search", "ok").Inc()
	return cities
}

// Coordinates resolves name to its best-match location, or nil when the name
// is unknown or the geocoder is unreachable.
func (s *GeocodingService) Coordinates(ctx context.Context, name string) *domain.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	if s.cache != nil {
		loc, ok, err := s.cache.Get(ctx, name)
		if err != nil {
			s.logger.Warn().Err(err).Str("name", name).Msg("geocode cache read failed")
		} else if ok {
			metrics.GeocoderRequestsTotal.WithLabelValues("lookup", "cache_hit").Inc()
			return loc
		}
	}

	loc, err := s.geocoder.Lookup(ctx, name)
	if err != nil {
		metrics.GeocoderRequestsTotal.WithLabelValues("lookup", "error").Inc()
		s.logger.Warn().Err(err).Str("name", name).Msg("coordinate lookup failed")
		return nil
	}
	if loc == nil {
		metrics.GeocoderRequestsTotal.WithLabelValues("lookup", "empty").Inc()
		return nil
	}

	metrics.GeocoderRequestsTotal.WithLabelValues("lookup", "ok").Inc()
	if s.cache != nil {
		if err := s.cache.Set(ctx, name, *loc, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Str("name", name).Msg("geocode cache write failed")
		}
	}
	return loc
}
