package commands

import (
	"context"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/ports"

	"go.uber.org/zap"
)

// RecordLocationSampleCommandHandler measures, stores and publishes one
// location sample. It returns assignment.ErrNotTracking when the shift has
// already ended; the monitor discards such samples.
type RecordLocationSampleCommandHandler struct {
	uowFactory   TrackingUoWFactory
	publisher    ports.EventPublisher
	historyLimit int
	logger       *zap.Logger
}

func NewRecordLocationSampleCommandHandler(
	uowFactory TrackingUoWFactory,
	publisher ports.EventPublisher,
	historyLimit int,
	logger *zap.Logger,
) RecordLocationSampleCommandHandler {
	if historyLimit <= 0 {
		historyLimit = assignment.DefaultHistoryLimit
	}
	return RecordLocationSampleCommandHandler{
		uowFactory:   uowFactory,
		publisher:    publisher,
		historyLimit: historyLimit,
		logger:       logger.With(zap.String("component", "record-location")),
	}
}

func (h RecordLocationSampleCommandHandler) Handle(
	ctx context.Context,
	cmd RecordLocationSampleCommand,
) (assignment.LocationSample, error) {
	if err := cmd.Validate(); err != nil {
		return assignment.LocationSample{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return assignment.LocationSample{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	a, err := assignmentRepo.GetForUpdate(ctx, cmd.AssignmentID())
	if err != nil {
		return assignment.LocationSample{}, err
	}

	j, err := uow.JobRepository().Get(ctx, a.JobID())
	if err != nil {
		return assignment.LocationSample{}, err
	}

	sample, err := a.RecordLocation(j.Geofence(), cmd.Point(), cmd.RecordedAt(), h.historyLimit)
	if err != nil {
		return assignment.LocationSample{}, err
	}

	if err = assignmentRepo.Update(ctx, a); err != nil {
		return assignment.LocationSample{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return assignment.LocationSample{}, err
	}

	publishCommitted(ctx, h.publisher, h.logger, a.PullEvents())
	return sample, nil
}
