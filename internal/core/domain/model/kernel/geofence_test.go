package kernel_test

import (
	"testing"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeofence(t *testing.T) {
	site := mustPoint(t, 34.19732, 73.24223)

	fence, err := kernel.NewGeofence(site, kernel.DefaultGeofenceRadiusMeters)
	require.NoError(t, err)
	assert.Equal(t, 500.0, fence.RadiusMeters())
	assert.Equal(t, site, fence.Center())

	_, err = kernel.NewGeofence(site, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = kernel.NewGeofence(kernel.GeoPoint{}, 100)
	require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
}

func TestGeofence_Measure(t *testing.T) {
	site := mustPoint(t, 34.19732, 73.24223)
	fence, err := kernel.NewGeofence(site, 500)
	require.NoError(t, err)

	t.Run("worker on site is inside", func(t *testing.T) {
		d, outside, err := fence.Measure(site)

		require.NoError(t, err)
		assert.Zero(t, d)
		assert.False(t, outside)
	})

	t.Run("worker a kilometer away is outside", func(t *testing.T) {
		d, outside, err := fence.Measure(mustPoint(t, 34.2050, 73.2500))

		require.NoError(t, err)
		assert.Greater(t, d, 500.0)
		assert.True(t, outside)
	})

	t.Run("zero fence is rejected", func(t *testing.T) {
		_, _, err := kernel.Geofence{}.Measure(site)

		assert.ErrorIs(t, err, kernel.ErrGeofenceIsNotConstructed)
	})
}
