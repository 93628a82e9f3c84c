package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const defaultDedupTTL = time.Hour

// DedupChecker is the in-process counterpart of the Redis dedup store, used
// when Redis is disabled. Keys expire lazily on lookup.
type DedupChecker struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	seen map[string]time.Time
}

// NewDedupChecker returns a checker whose marks expire after ttl
// (one hour when ttl <= 0).
func NewDedupChecker(ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &DedupChecker{
		ttl:  ttl,
		now:  time.Now,
		seen: make(map[string]time.Time),
	}
}

func (d *DedupChecker) IsDuplicate(_ context.Context, shipmentID, status string, ts time.Time) (bool, error) {
	k := dedupKey(shipmentID, status, ts)

	d.mu.Lock()
	defer d.mu.Unlock()
	expires, ok := d.seen[k]
	if !ok {
		return false, nil
	}
	if d.now().After(expires) {
		delete(d.seen, k)
		return false, nil
	}
	return true, nil
}

func (d *DedupChecker) Mark(_ context.Context, shipmentID, status string, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[dedupKey(shipmentID, status, ts)] = d.now().Add(d.ttl)
	return nil
}

func dedupKey(shipmentID, status string, ts time.Time) string {
	return fmt.Sprintf("%s:%s:%d", shipmentID, status, ts.Unix())
}
