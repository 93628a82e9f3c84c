package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks backed by Redis.
// Key format: dedup:<shipment_id>:<status>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
// Marks expire after ttl, or one hour when ttl <= 0.
func NewDedupChecker(client *redis.Client, ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = dedupTTL
	}
	return &DedupChecker{client: client, ttl: ttl}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, shipmentID, status string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, dedupKey(shipmentID, status, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed.
func (d *DedupChecker) Mark(ctx context.Context, shipmentID, status string, ts time.Time) error {
	if err := d.client.Set(ctx, dedupKey(shipmentID, status, ts), "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func dedupKey(shipmentID, status string, ts time.Time) string {
	return fmt.Sprintf("dedup:%s:%s:%d", shipmentID, status, ts.Unix())
}
