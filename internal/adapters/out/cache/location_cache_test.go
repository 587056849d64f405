package cache_test

import (
	"testing"
	"time"

	"fastfood/internal/adapters/out/cache"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSample(t *testing.T, droneID kernel.UUID, lat, lon float64) tracking.Sample {
	t.Helper()

	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	sample, err := tracking.NewSample(droneID, point, time.Now())
	require.NoError(t, err)
	return sample
}

func TestTTLLocationCache_SetAndGet(t *testing.T) {
	c := cache.NewTTLLocationCache(time.Minute)
	droneID := kernel.NewUUID()

	_, ok := c.Get(droneID)
	assert.False(t, ok, "Empty cache should miss")

	c.Set(droneID, makeSample(t, droneID, 10.76, 106.66))

	got, ok := c.Get(droneID)
	require.True(t, ok)
	assert.InDelta(t, 10.76, got.Point().Latitude(), 1e-9)
	assert.InDelta(t, 106.66, got.Point().Longitude(), 1e-9)
}

func TestTTLLocationCache_OverwriteKeepsLatest(t *testing.T) {
	c := cache.NewTTLLocationCache(time.Minute)
	droneID := kernel.NewUUID()

	c.Set(droneID, makeSample(t, droneID, 10.76, 106.66))
	c.Set(droneID, makeSample(t, droneID, 10.77, 106.67))

	got, ok := c.Get(droneID)
	require.True(t, ok)
	assert.InDelta(t, 10.77, got.Point().Latitude(), 1e-9)
}

func TestTTLLocationCache_EntriesExpire(t *testing.T) {
	c := cache.NewTTLLocationCache(50 * time.Millisecond)
	go c.Start()
	defer c.Stop()

	droneID := kernel.NewUUID()
	c.Set(droneID, makeSample(t, droneID, 10.76, 106.66))

	_, ok := c.Get(droneID)
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := c.Get(droneID)
		return !ok
	}, time.Second, 20*time.Millisecond, "Entry should age out after the TTL")
}

func TestTTLLocationCache_ReadsDoNotExtendLifetime(t *testing.T) {
	c := cache.NewTTLLocationCache(50 * time.Millisecond)
	go c.Start()
	defer c.Stop()

	droneID := kernel.NewUUID()
	c.Set(droneID, makeSample(t, droneID, 10.76, 106.66))

	// Poll faster than the TTL; a silent drone must age out regardless.
	assert.Eventually(t, func() bool {
		_, ok := c.Get(droneID)
		return !ok
	}, time.Second, 10*time.Millisecond, "Polled entry should still age out after the TTL")
}

func TestTTLLocationCache_SetRefreshesLifetime(t *testing.T) {
	c := cache.NewTTLLocationCache(80 * time.Millisecond)
	go c.Start()
	defer c.Stop()

	droneID := kernel.NewUUID()
	for i := 0; i < 5; i++ {
		c.Set(droneID, makeSample(t, droneID, 10.76, 106.66))
		time.Sleep(40 * time.Millisecond)
	}

	_, ok := c.Get(droneID)
	assert.True(t, ok, "A reporting drone should outlive the TTL")
}

func TestTTLLocationCache_IsolatesDrones(t *testing.T) {
	c := cache.NewTTLLocationCache(time.Minute)
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	c.Set(first, makeSample(t, first, 10.76, 106.66))

	_, ok := c.Get(second)
	assert.False(t, ok)
}
