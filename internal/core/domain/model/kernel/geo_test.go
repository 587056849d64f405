package kernel_test

import (
	"testing"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(10.762622, 106.660172)

		require.NoError(t, err)
		assert.InDelta(t, 10.762622, point.Latitude(), 0)
		assert.InDelta(t, 106.660172, point.Longitude(), 0)
		require.NoError(t, point.Validate())
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		corners := [][2]float64{
			{kernel.MinLatitude, kernel.MinLongitude},
			{kernel.MinLatitude, kernel.MaxLongitude},
			{kernel.MaxLatitude, kernel.MinLongitude},
			{kernel.MaxLatitude, kernel.MaxLongitude},
		}
		for _, c := range corners {
			_, err := kernel.NewGeoPoint(c[0], c[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		for _, lat := range []float64{-90.000001, 90.000001, 120} {
			_, err := kernel.NewGeoPoint(lat, 0)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		for _, lon := range []float64{-180.000001, 180.000001, 200} {
			_, err := kernel.NewGeoPoint(0, lon)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		require.Error(t, point.Validate())
	})
}

func TestGeoPoint_IsZero(t *testing.T) {
	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	assert.True(t, origin.IsZero())

	point, err := kernel.NewGeoPoint(10.8, 106.7)
	require.NoError(t, err)
	assert.False(t, point.IsZero())
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(10.5, 106.5)
	b, _ := kernel.NewGeoPoint(10.5, 106.5)
	c, _ := kernel.NewGeoPoint(10.5, 106.6)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
