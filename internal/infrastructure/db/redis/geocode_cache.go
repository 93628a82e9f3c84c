package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// GeocodeCache stores resolved coordinates as JSON under geocode:<name>.
// Names are matched case-insensitively.
type GeocodeCache struct {
	client *redis.Client
}

func NewGeocodeCache(client *redis.Client) *GeocodeCache {
	return &GeocodeCache{client: client}
}

func (c *GeocodeCache) Get(ctx context.Context, name string) (*domain.Location, bool, error) {
	raw, err := c.client.Get(ctx, geocodeKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("geocode cache get: %w", err)
	}

	var loc domain.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, false, fmt.Errorf("geocode cache decode: %w", err)
	}
	return &loc, true, nil
}

func (c *GeocodeCache) Set(ctx context.Context, name string, loc domain.Location, ttl time.Duration) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("geocode cache encode: %w", err)
	}
	if err := c.client.Set(ctx, geocodeKey(name), raw, ttl).Err(); err != nil {
		return fmt.Errorf("geocode cache set: %w", err)
	}
	return nil
}

func geocodeKey(name string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(name))
}
