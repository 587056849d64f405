package tracking_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/tracking"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSample(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	point, err := kernel.NewGeoPoint(10.762622, 106.660172)
	require.NoError(t, err)

	t.Run("creates valid sample", func(t *testing.T) {
		droneID := kernel.NewUUID()

		sample, err := tracking.NewSample(droneID, point, now)

		require.NoError(t, err)
		assert.True(t, sample.DroneID().IsEqual(droneID))
		assert.True(t, sample.Point().IsEqual(point))
		assert.Equal(t, now.UnixMilli(), sample.Timestamp())
	})

	t.Run("rejects missing drone id", func(t *testing.T) {
		_, err := tracking.NewSample(kernel.UUID{}, point, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed point", func(t *testing.T) {
		var zero kernel.GeoPoint

		_, err := tracking.NewSample(kernel.NewUUID(), zero, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
