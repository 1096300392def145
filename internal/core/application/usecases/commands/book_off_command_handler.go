package commands

import (
	"context"
	"fmt"
	"time"

	"attendance/internal/core/ports"

	"go.uber.org/zap"
)

// BookOffCommandHandler ends an InProgress shift without an invoice. The
// job, the commitment and the monitor are closed the same way as on completion.
type BookOffCommandHandler struct {
	uowFactory UoWFactory
	tracking   ports.TrackingController
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

func NewBookOffCommandHandler(
	uowFactory UoWFactory,
	tracking ports.TrackingController,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) BookOffCommandHandler {
	return BookOffCommandHandler{
		uowFactory: uowFactory,
		tracking:   tracking,
		publisher:  publisher,
		logger:     logger.With(zap.String("component", "book-off")),
	}
}

func (h BookOffCommandHandler) Handle(ctx context.Context, cmd BookOffCommand) error {
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

	shift, err := lockShift(ctx, uow, cmd.AssignmentID())
	if err != nil {
		return err
	}
	a, j := shift.assignment, shift.job

	if !j.IsOwnedBy(cmd.CompanyID()) {
		return fmt.Errorf("%w: job %s", ErrJobNotOwnedByCompany, j.ID())
	}

	now := time.Now().UTC()
	if err = a.BookOff(now); err != nil {
		return err
	}
	if err = j.MarkCompleted(); err != nil {
		return err
	}
	if err = shift.worker.Release(j.ID(), now); err != nil {
		return err
	}

	if err = shift.save(ctx, uow); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.tracking.StopTracking(ctx, a.ID()); err != nil {
		h.logger.Warn("failed to stop tracking", zap.String("assignment_id", a.ID().String()), zap.Error(err))
	}

	publishCommitted(ctx, h.publisher, h.logger, a.PullEvents())
	return nil
}
