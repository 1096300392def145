package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/services"
	"attendance/internal/core/ports"
	"attendance/internal/pkg/errs"

	"go.uber.org/zap"
)

// ErrJobNotOwnedByCompany is returned when a company acts on another company's job.
var ErrJobNotOwnedByCompany = errors.New("job is not owned by company")

// AssignWorkerCommandHandler accepts a worker for a job.
//
// Errors worth branching on:
//   - ErrJobNotOwnedByCompany
//   - services.ErrJobAlreadyAssigned: another worker holds the slot
//   - services.ErrWorkerUnavailable: the worker's calendar conflicts
//   - assignment.ErrInvalidTransition: the application is past Applied
type AssignWorkerCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.ShiftAssigner
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

func NewAssignWorkerCommandHandler(
	uowFactory UoWFactory,
	assigner services.ShiftAssigner,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		publisher:  publisher,
		logger:     logger.With(zap.String("component", "assign-worker")),
	}
}

// Handle returns the id of the accepted assignment.
func (h AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	workerRepo := uow.WorkerRepository()
	assignmentRepo := uow.AssignmentRepository()

	j, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !j.IsOwnedBy(cmd.CompanyID()) {
		return kernel.UUID{}, fmt.Errorf("%w: job %s", ErrJobNotOwnedByCompany, j.ID())
	}

	w, err := workerRepo.GetForUpdate(ctx, cmd.WorkerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()

	isNew := false
	application, err := assignmentRepo.FindByJobAndWorker(ctx, j.ID(), w.ID())
	if err == nil && application.Status().IsTerminal() {
		err = errs.NewObjectNotFoundError("live application", w.ID())
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		isNew = true
		application, err = assignment.NewAssignment(cmd.NewAssignmentID(), j.ID(), w.ID(), now)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	jobAssignments, err := assignmentRepo.ListByJob(ctx, j.ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.assigner.Assign(j, w, application, jobAssignments, now); err != nil {
		return kernel.UUID{}, err
	}

	if err = jobRepo.UpdateStatus(ctx, j); err != nil {
		return kernel.UUID{}, err
	}
	if err = workerRepo.SaveCommitments(ctx, w); err != nil {
		return kernel.UUID{}, err
	}

	if isNew {
		err = assignmentRepo.Add(ctx, application)
	} else {
		err = assignmentRepo.Update(ctx, application)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	publishCommitted(ctx, h.publisher, h.logger, application.PullEvents())
	return application.ID(), nil
}
