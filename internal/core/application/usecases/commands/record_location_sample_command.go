package commands

import (
	"errors"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

var ErrRecordLocationSampleCommandIsNotConstructed = errors.New(
	"RecordLocationSampleCommand must be created via NewRecordLocationSampleCommand constructor",
)

// RecordLocationSampleCommand is one geofence monitor tick with a fresh position.
type RecordLocationSampleCommand struct {
	assignmentID kernel.UUID
	point        kernel.GeoPoint
	recordedAt   time.Time

	guard guard.ConstructorGuard
}

func NewRecordLocationSampleCommand(
	assignmentID kernel.UUID,
	point kernel.GeoPoint,
	recordedAt time.Time,
) (RecordLocationSampleCommand, error) {
	var timeErr error
	if recordedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("recorded at")
	}
	if err := errors.Join(assignmentID.Validate(), point.Validate(), timeErr); err != nil {
		return RecordLocationSampleCommand{}, err
	}

	return RecordLocationSampleCommand{
		assignmentID: assignmentID,
		point:        point,
		recordedAt:   recordedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RecordLocationSampleCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationSampleCommandIsNotConstructed)
}

func (c RecordLocationSampleCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c RecordLocationSampleCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c RecordLocationSampleCommand) RecordedAt() time.Time {
	return c.recordedAt
}
