package kernel

import (
	"fmt"

	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

// DefaultGeofenceRadiusMeters applies when a job is posted without a radius.
const DefaultGeofenceRadiusMeters = 500.0

// ErrGeofenceIsNotConstructed is returned when a Geofence was not built by NewGeofence.
var ErrGeofenceIsNotConstructed = errs.NewValueIsRequiredError("geofence must be created via NewGeofence")

// Geofence is the circular allowed area around a job site.
type Geofence struct {
	center       GeoPoint
	radiusMeters float64
	guard        guard.ConstructorGuard
}

// NewGeofence requires a constructed center and a strictly positive radius.
func NewGeofence(center GeoPoint, radiusMeters float64) (Geofence, error) {
	if err := center.Validate(); err != nil {
		return Geofence{}, err
	}
	if radiusMeters <= 0 {
		return Geofence{}, errs.NewValueIsInvalidErrorWithCause("radius",
			fmt.Errorf("%v is not greater than 0", radiusMeters))
	}
	return Geofence{center: center, radiusMeters: radiusMeters, guard: guard.NewConstructorGuard()}, nil
}

func (g Geofence) Validate() error {
	return g.guard.Validate(ErrGeofenceIsNotConstructed)
}

func (g Geofence) Center() GeoPoint {
	return g.center
}

func (g Geofence) RadiusMeters() float64 {
	return g.radiusMeters
}

// Measure returns the distance from the center and whether point lies outside
// the fence. A point exactly on the boundary is inside.
func (g Geofence) Measure(point GeoPoint) (distanceMeters float64, outside bool, err error) {
	if err = g.Validate(); err != nil {
		return 0, false, err
	}
	distanceMeters, err = g.center.DistanceTo(point)
	if err != nil {
		return 0, false, err
	}
	return distanceMeters, distanceMeters > g.radiusMeters, nil
}
