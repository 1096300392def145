package commands

import (
	"context"
	"fmt"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/services"
	"attendance/internal/core/ports"

	"go.uber.org/zap"
)

// CheckInCommandHandler starts a shift on a valid checkpoint scan and starts
// the geofence monitor once the change is committed.
//
// A rejected scan returns a *services.CheckpointMismatchError and leaves the
// assignment Assigned; the worker may scan again.
type CheckInCommandHandler struct {
	uowFactory UoWFactory
	verifier   services.CheckpointVerifier
	tracking   ports.TrackingController
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

func NewCheckInCommandHandler(
	uowFactory UoWFactory,
	verifier services.CheckpointVerifier,
	tracking ports.TrackingController,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) CheckInCommandHandler {
	return CheckInCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		tracking:   tracking,
		publisher:  publisher,
		logger:     logger.With(zap.String("component", "check-in")),
	}
}

func (h CheckInCommandHandler) Handle(ctx context.Context, cmd CheckInCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	jobRepo := uow.JobRepository()

	current, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	j, err := jobRepo.GetForUpdate(ctx, current.JobID())
	if err != nil {
		return err
	}

	a, err := assignmentRepo.GetForUpdate(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	// an out of order check-in is reported as such, not as a bad scan
	if err = a.EnsureCanTransitionTo(assignment.InProgress); err != nil {
		return err
	}

	match, err := h.verifier.Verify(j, cmd.ScannedCode())
	if err != nil {
		h.logger.Info("checkpoint scan rejected", zap.String("assignment_id", a.ID().String()))
		return err
	}

	if err = a.CheckIn(match.CheckpointID, time.Now().UTC()); err != nil {
		return err
	}
	if err = j.MarkInProgress(); err != nil {
		return err
	}

	if err = jobRepo.UpdateStatus(ctx, j); err != nil {
		return err
	}
	if err = assignmentRepo.Update(ctx, a); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishCommitted(ctx, h.publisher, h.logger, a.PullEvents())

	if err = h.tracking.StartTracking(ctx, a.ID()); err != nil {
		return fmt.Errorf("checked in, but tracking did not start: %w", err)
	}
	return nil
}
