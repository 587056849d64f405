package delivery_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrip(t *testing.T, now time.Time) *delivery.Delivery {
	t.Helper()

	start, err := kernel.NewGeoPoint(10.776889, 106.700806)
	require.NoError(t, err)
	end, err := kernel.NewGeoPoint(10.762622, 106.660172)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), start, end, now)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates pending trip without drone", func(t *testing.T) {
		d := newTrip(t, now)

		assert.Equal(t, delivery.Pending, d.Status())
		assert.Nil(t, d.DroneID())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("rejects unvalidated coordinates", func(t *testing.T) {
		var zero kernel.GeoPoint
		end, err := kernel.NewGeoPoint(10.7, 106.6)
		require.NoError(t, err)

		_, err = delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), zero, end, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDelivery_Lifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending to delivering to delivered", func(t *testing.T) {
		d := newTrip(t, now)
		droneID := kernel.NewUUID()

		require.NoError(t, d.AssignDrone(droneID, now))
		require.NoError(t, d.StartTrip(now))
		assert.Equal(t, delivery.Delivering, d.Status())

		done := now.Add(20 * time.Minute)
		require.NoError(t, d.Complete(done))

		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.DeliveredAt())
		assert.Equal(t, done, *d.DeliveredAt())
		assert.True(t, d.DroneID().IsEqual(droneID))
	})

	t.Run("cannot complete a pending trip", func(t *testing.T) {
		d := newTrip(t, now)

		err := d.Complete(now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, delivery.Pending, d.Status())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("cancel from delivering", func(t *testing.T) {
		d := newTrip(t, now)
		require.NoError(t, d.StartTrip(now))

		require.NoError(t, d.Cancel(now))

		assert.Equal(t, delivery.Cancelled, d.Status())
	})

	t.Run("no drone assignment after terminal state", func(t *testing.T) {
		d := newTrip(t, now)
		require.NoError(t, d.Cancel(now))

		err := d.AssignDrone(kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
