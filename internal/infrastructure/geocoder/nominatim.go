// Package geocoder resolves place names through the OpenStreetMap Nominatim
// search API.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "shipment-tracker/1.0"
	searchLimit      = 10
)

// Config captures the settings for a Nominatim client.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RatePerSecond caps outbound requests; <= 0 disables the limiter.
	RatePerSecond float64
}

// Nominatim implements ports.Geocoder.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

func NewNominatim(cfg Config) *Nominatim {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	n := &Nominatim{
		baseURL:   base,
		userAgent: ua,
		client:    &http.Client{Timeout: timeout},
	}
	if cfg.RatePerSecond > 0 {
		n.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}
	return n
}

// place is one entry of a Nominatim search response.
type place struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Class       string `json:"class"`
	Type        string `json:"type"`
	Address     struct {
		Country string `json:"country"`
	} `json:"address"`
}

// Search returns administrative areas and populated places matching query.
func (n *Nominatim) Search(ctx context.Context, query string) ([]domain.City, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("addressdetails", "1")

	places, err := n.search(ctx, query, params)
	if err != nil {
		return nil, err
	}

	cities := make([]domain.City, 0, len(places))
	for _, p := range places {
		if p.Type != "administrative" && p.Class != "place" {
			continue
		}
		cities = append(cities, domain.City{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Lat:         p.Lat,
			Lon:         p.Lon,
			Country:     p.Address.Country,
		})
	}
	return cities, nil
}

// Lookup returns the coordinates of the best match, or nil when none exists.
func (n *Nominatim) Lookup(ctx context.Context, name string) (*domain.Location, error) {
	params := url.Values{}
	params.Set("limit", "1")

	places, err := n.search(ctx, name, params)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lat %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lon %q: %w", places[0].Lon, err)
	}
	return &domain.Location{Lat: lat, Lon: lon}, nil
}

func (n *Nominatim) search(ctx context.Context, query string, params url.Values) ([]place, error) {
	if n.limiter != nil {
		if err := n.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("geocoder rate limit: %w", err)
		}
	}

	params.Set("format", "json")
	params.Set("q", query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned %s", resp.Status)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode geocoder response: %w", err)
	}
	return places, nil
}
