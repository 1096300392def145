package assignment

import (
	"errors"
	"fmt"
	"math"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
)

// LocationSample is one measured position of the worker. Samples are never
// changed after they are recorded.
type LocationSample struct {
	sequence       int64
	recordedAt     time.Time
	point          kernel.GeoPoint
	distanceMeters float64
	outside        bool
}

// RestoreLocationSample rebuilds a persisted sample.
func RestoreLocationSample(
	sequence int64,
	recordedAt time.Time,
	point kernel.GeoPoint,
	distanceMeters float64,
	outside bool,
) (LocationSample, error) {
	var validationErrs []error
	if sequence < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("sequence", fmt.Errorf("%d is negative", sequence)))
	}
	if recordedAt.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("recorded at"))
	}
	if distanceMeters < 0 || math.IsNaN(distanceMeters) {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is not a distance", distanceMeters)))
	}
	validationErrs = append(validationErrs, point.Validate())
	if err := errors.Join(validationErrs...); err != nil {
		return LocationSample{}, err
	}

	return LocationSample{
		sequence:       sequence,
		recordedAt:     recordedAt,
		point:          point,
		distanceMeters: distanceMeters,
		outside:        outside,
	}, nil
}

// Sequence orders samples within one assignment, starting at 0.
func (s LocationSample) Sequence() int64 {
	return s.sequence
}

func (s LocationSample) RecordedAt() time.Time {
	return s.recordedAt
}

func (s LocationSample) Point() kernel.GeoPoint {
	return s.point
}

// DistanceMeters is the distance from the job site at the time of the sample.
func (s LocationSample) DistanceMeters() float64 {
	return s.distanceMeters
}

func (s LocationSample) OutsideGeofence() bool {
	return s.outside
}
