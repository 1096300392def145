package commands

import (
	"errors"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand is a position pushed by the worker app.
type ReportLocationCommand struct {
	workerID   kernel.UUID
	point      kernel.GeoPoint
	reportedAt time.Time

	guard guard.ConstructorGuard
}

func NewReportLocationCommand(workerID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) (ReportLocationCommand, error) {
	var timeErr error
	if reportedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("reported at")
	}
	if err := errors.Join(workerID.Validate(), point.Validate(), timeErr); err != nil {
		return ReportLocationCommand{}, err
	}
	return ReportLocationCommand{
		workerID:   workerID,
		point:      point,
		reportedAt: reportedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

func (c ReportLocationCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c ReportLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c ReportLocationCommand) ReportedAt() time.Time {
	return c.reportedAt
}
