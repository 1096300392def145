package kernel_test

import (
	"math"
	"testing"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func TestNewGeoPoint(t *testing.T) {
	t.Run("accepts boundary coordinates", func(t *testing.T) {
		for _, c := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}, {34.19732, 73.24223}} {
			p, err := kernel.NewGeoPoint(c[0], c[1])

			require.NoError(t, err)
			assert.Equal(t, c[0], p.Latitude())
			assert.Equal(t, c[1], p.Longitude())
			assert.NoError(t, p.Validate())
		}
	})

	t.Run("rejects latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91.5, 10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorContains(t, err, "latitude")
	})

	t.Run("reports both coordinates when both are wrong", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-100, 200)

		require.Error(t, err)
		assert.ErrorContains(t, err, "latitude")
		assert.ErrorContains(t, err, "longitude")
	})

	t.Run("rejects NaN", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(math.NaN(), 0)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	var p kernel.GeoPoint

	assert.ErrorIs(t, p.Validate(), kernel.ErrGeoPointIsNotConstructed)
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	site := mustPoint(t, 34.19732, 73.24223)

	t.Run("zero for the same point", func(t *testing.T) {
		d, err := site.DistanceTo(site)

		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]kernel.GeoPoint{
			{site, mustPoint(t, 34.2050, 73.2500)},
			{mustPoint(t, 51.5007, -0.1246), mustPoint(t, 48.8584, 2.2945)},
			{mustPoint(t, -33.8568, 151.2153), mustPoint(t, 35.6586, 139.7454)},
			{mustPoint(t, 0, 179.9), mustPoint(t, 0, -179.9)},
		}
		for _, pair := range pairs {
			ab, err := pair[0].DistanceTo(pair[1])
			require.NoError(t, err)
			ba, err := pair[1].DistanceTo(pair[0])
			require.NoError(t, err)

			assert.Equal(t, ab, ba)
		}
	})

	t.Run("matches known distances", func(t *testing.T) {
		testCases := []struct {
			name     string
			from, to kernel.GeoPoint
			want     float64
			delta    float64
		}{
			{
				name:  "one degree of latitude",
				from:  mustPoint(t, 0, 0),
				to:    mustPoint(t, 1, 0),
				want:  kernel.EarthRadiusMeters * math.Pi / 180,
				delta: 0.001,
			},
			{
				name:  "job site to worker outside the fence",
				from:  site,
				to:    mustPoint(t, 34.2050, 73.2500),
				want:  1113.5,
				delta: 1,
			},
			{
				name:  "across the antimeridian",
				from:  mustPoint(t, 0, 179.9),
				to:    mustPoint(t, 0, -179.9),
				want:  kernel.EarthRadiusMeters * 0.2 * math.Pi / 180,
				delta: 0.01,
			},
			{
				name:  "antipodes",
				from:  mustPoint(t, 0, 0),
				to:    mustPoint(t, 0, 180),
				want:  kernel.EarthRadiusMeters * math.Pi,
				delta: 0.01,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				d, err := tc.from.DistanceTo(tc.to)

				require.NoError(t, err)
				assert.InDelta(t, tc.want, d, tc.delta)
			})
		}
	})

	t.Run("worker at (34.2050, 73.2500) is outside a 500m fence", func(t *testing.T) {
		d, err := site.DistanceTo(mustPoint(t, 34.2050, 73.2500))

		require.NoError(t, err)
		assert.Greater(t, d, 500.0)
	})

	t.Run("rejects unconstructed points", func(t *testing.T) {
		_, err := site.DistanceTo(kernel.GeoPoint{})

		assert.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a := mustPoint(t, 10, 20)

	equal, err := a.IsEqual(mustPoint(t, 10, 20))
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(mustPoint(t, 10, 20.0001))
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.GeoPoint{})
	assert.Error(t, err)
}
