// Package forecast retrieves forecast bundles from the upstream provider and
// shields it behind a short-lived cache. The cache is the only stateful part
// of the engine; everything downstream of it is pure derivation.
package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"skycast/internal/types"
)

// DefaultTTL is the freshness window for a cached bundle. Forecast models
// update on the order of an hour; twenty minutes keeps interactive use snappy
// without serving meaningfully stale data.
const DefaultTTL = 20 * time.Minute

// FetchFunc performs the remote retrieval guarded by the cache.
type FetchFunc func(ctx context.Context) (*types.ForecastBundle, error)

// cacheKey identifies one location/unit combination. Coordinates are rounded
// to three decimals (roughly 110 m) so near-duplicate positions collapse to
// a single key.
type cacheKey struct {
	lat   float64
	lon   float64
	units types.UnitSystem
}

type cacheEntry struct {
	bundle    *types.ForecastBundle
	fetchedAt time.Time
}

// Cache is a time-boxed forecast cache safe for concurrent callers.
// Staleness is checked lazily on each read; there is no background eviction.
// Stale entries are retained until a successful refetch replaces them, which
// bounds memory by the number of distinct locations a deployment serves.
type Cache struct {
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	group   singleflight.Group
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock overrides the time source. Intended for tests that advance a
// simulated clock across the freshness window.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a Cache with the given freshness window. A non-positive
// ttl falls back to DefaultTTL.
func NewCache(ttl time.Duration, logger *slog.Logger, opts ...CacheOption) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
		entries: make(map[cacheKey]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrFetch returns the cached bundle for the location/unit combination when
// one exists and is younger than the freshness window; otherwise it invokes
// fetch. A successful fetch replaces the entry. A failed fetch writes
// nothing -- any prior stale entry stays in place for a later retry -- and the
// failure propagates to the caller as a nil bundle with the error.
//
// Concurrent misses for the same key are collapsed through singleflight so
// the upstream sees at most one in-flight fetch per key.
func (c *Cache) GetOrFetch(ctx context.Context, lat, lon float64, units types.UnitSystem, fetch FetchFunc) (*types.ForecastBundle, error) {
	key := cacheKey{
		lat:   types.Round3(lat),
		lon:   types.Round3(lon),
		units: units,
	}

	if b, ok := c.lookup(key); ok {
		return b, nil
	}

	flightKey := fmt.Sprintf("%.3f:%.3f:%s", key.lat, key.lon, key.units)
	v, err, _ := c.group.Do(flightKey, func() (any, error) {
		// A concurrent flight may have refreshed the entry while this
		// goroutine waited on the singleflight lock.
		if b, ok := c.lookup(key); ok {
			return b, nil
		}

		bundle, err := fetch(ctx)
		if err != nil {
			c.logger.Warn("forecast fetch failed",
				"lat", key.lat, "lon", key.lon, "units", string(key.units), "error", err)
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{bundle: bundle, fetchedAt: c.now()}
		c.mu.Unlock()

		return bundle, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.ForecastBundle), nil
}

// lookup returns the entry for key if it is still fresh.
func (c *Cache) lookup(key cacheKey) (*types.ForecastBundle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.bundle, true
}
