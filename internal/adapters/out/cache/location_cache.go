// Package cache implements the location cache port over an in-process TTL
// cache. A drone that stops reporting simply ages out of the cache.
package cache

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"

	"github.com/jellydator/ttlcache/v3"
)

// DefaultTTL is how long a position entry survives without a refresh.
const DefaultTTL = 10 * time.Minute

// TTLLocationCache holds the current position per drone. Every Set resets
// the entry's TTL; expired entries are evicted by a background goroutine.
type TTLLocationCache struct {
	cache *ttlcache.Cache[kernel.UUID, tracking.Sample]
}

// NewTTLLocationCache creates a cache with the given TTL. Call Start to run
// the eviction loop and Stop on shutdown.
func NewTTLLocationCache(ttl time.Duration) *TTLLocationCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TTLLocationCache{
		// Reads must not refresh the TTL: only a new report keeps a drone
		// alive, readers polling a silent drone do not.
		cache: ttlcache.New(
			ttlcache.WithTTL[kernel.UUID, tracking.Sample](ttl),
			ttlcache.WithDisableTouchOnHit[kernel.UUID, tracking.Sample](),
		),
	}
}

// Start runs the background eviction loop. Blocks until Stop is called, so
// run it in its own goroutine.
func (c *TTLLocationCache) Start() {
	c.cache.Start()
}

// Stop terminates the eviction loop.
func (c *TTLLocationCache) Stop() {
	c.cache.Stop()
}

// Set writes or overwrites the drone's current entry, resetting its TTL.
func (c *TTLLocationCache) Set(droneID kernel.UUID, sample tracking.Sample) {
	c.cache.Set(droneID, sample, ttlcache.DefaultTTL)
}

// Get returns the cached current value if present and unexpired.
func (c *TTLLocationCache) Get(droneID kernel.UUID) (tracking.Sample, bool) {
	item := c.cache.Get(droneID)
	if item == nil {
		return tracking.Sample{}, false
	}
	return item.Value(), true
}
