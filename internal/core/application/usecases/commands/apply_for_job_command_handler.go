package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/job"
	"attendance/internal/pkg/errs"
)

// ErrAlreadyApplied is returned when the worker already has a live
// assignment for the job.
var ErrAlreadyApplied = errors.New("worker already applied for this job")

// ApplyForJobCommandHandler creates assignments in the Applied state.
type ApplyForJobCommandHandler struct {
	uowFactory UoWFactory
}

func NewApplyForJobCommandHandler(uowFactory UoWFactory) ApplyForJobCommandHandler {
	return ApplyForJobCommandHandler{uowFactory: uowFactory}
}

// Handle accepts applications for Open jobs only. A worker whose previous
// assignment for the job ended may apply again.
func (h ApplyForJobCommandHandler) Handle(ctx context.Context, cmd ApplyForJobCommand) error {
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

	j, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if j.Status() != job.Open {
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("job %s is %s, not open", j.ID(), j.Status()))
	}

	if _, err = uow.WorkerRepository().Get(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	existing, err := assignmentRepo.FindByJobAndWorker(ctx, cmd.JobID(), cmd.WorkerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err == nil && !existing.Status().IsTerminal() {
		return ErrAlreadyApplied
	}

	a, err := assignment.NewAssignment(cmd.AssignmentID(), cmd.JobID(), cmd.WorkerID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = assignmentRepo.Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
