package kernel

import (
	"errors"
	"fmt"
	"math"

	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

const (
	// EarthRadiusMeters is the mean earth radius used by the haversine formula.
	EarthRadiusMeters = 6_371_000.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not built by NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a WGS84 coordinate: the job site, or a position reported by a worker's device.
//
// Example:
//
//	site, _ := kernel.NewGeoPoint(34.19732, 73.24223)
//	worker, _ := kernel.NewGeoPoint(34.2050, 73.2500)
//	meters, _ := site.DistanceTo(worker) // ~1114
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates latitude within [-90, 90] and longitude within [-180, 180].
// Both violations are reported together.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

// Validate reports a zero-value GeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer, e.g. "GeoPoint(34.197320,73.242230)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// IsEqual compares coordinates of two constructed points.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceTo returns the great-circle distance in meters computed with the
// haversine formula. The result is symmetric and exactly zero for equal
// points; double precision keeps it within a meter up to tens of kilometers.
//
// Example:
//
//	a, _ := kernel.NewGeoPoint(34.19732, 73.24223)
//	d, err := a.DistanceTo(a) // d == 0, err == nil
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(p.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := lat2 - lat1
	dLng := degreesToRadians(other.longitude - p.longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// rounding can push h marginally above 1 for antipodal points
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h)), nil
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}
	p.longitude = longitude
	return nil
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
