package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

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

func receiveUpdate(t *testing.T, send chan []byte) LocationUpdate {
	t.Helper()

	select {
	case msg, ok := <-send:
		require.True(t, ok, "send channel closed unexpectedly")
		var upd LocationUpdate
		require.NoError(t, json.Unmarshal(msg, &upd))
		return upd
	case <-time.After(time.Second):
		t.Fatal("no update received")
		return LocationUpdate{}
	}
}

func TestHub_PublishDeliversInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	droneID := kernel.NewUUID()
	client := &Client{hub: hub, send: make(chan []byte, 8), droneID: droneID.String()}
	hub.register <- client

	require.NoError(t, hub.PublishLocation(ctx, makeSample(t, droneID, 10.76, 106.66)))
	require.NoError(t, hub.PublishLocation(ctx, makeSample(t, droneID, 10.77, 106.67)))

	first := receiveUpdate(t, client.send)
	second := receiveUpdate(t, client.send)
	assert.InDelta(t, 10.76, first.Latitude, 1e-9)
	assert.InDelta(t, 10.77, second.Latitude, 1e-9)
}

func TestHub_PublishIgnoresDronesWithoutSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	droneID := kernel.NewUUID()
	assert.NoError(t, hub.PublishLocation(ctx, makeSample(t, droneID, 10.76, 106.66)))
}

func TestHub_PublishAfterShutdownDoesNotBlock(t *testing.T) {
	runCtx, stop := context.WithCancel(t.Context())

	hub := NewHub()
	go hub.Run(runCtx)

	droneID := kernel.NewUUID()
	client := &Client{hub: hub, send: make(chan []byte, 1), droneID: droneID.String()}
	hub.register <- client

	stop()

	// Run closes every send channel on its way out.
	select {
	case _, ok := <-client.send:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("hub did not shut down")
	}

	pubCtx, cancel := context.WithCancel(context.Background())
	cancel()
	err := hub.PublishLocation(pubCtx, makeSample(t, droneID, 10.76, 106.66))
	assert.ErrorIs(t, err, context.Canceled)
}
