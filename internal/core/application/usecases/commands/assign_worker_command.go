package commands

import (
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand is a company selecting a worker for one of its jobs.
// When the worker never applied, an application with newAssignmentID is
// created on the fly and accepted at once.
//
// Example:
//
//	cmd, err := commands.NewAssignWorkerCommand(companyID, jobID, workerID, kernel.NewUUID())
//	assignmentID, err := handler.Handle(ctx, cmd)
type AssignWorkerCommand struct {
	companyID       kernel.UUID
	jobID           kernel.UUID
	workerID        kernel.UUID
	newAssignmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignWorkerCommand(companyID, jobID, workerID, newAssignmentID kernel.UUID) (AssignWorkerCommand, error) {
	if err := errors.Join(
		companyID.Validate(),
		jobID.Validate(),
		workerID.Validate(),
		newAssignmentID.Validate(),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return AssignWorkerCommand{
		companyID:       companyID,
		jobID:           jobID,
		workerID:        workerID,
		newAssignmentID: newAssignmentID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

func (c AssignWorkerCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c AssignWorkerCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c AssignWorkerCommand) NewAssignmentID() kernel.UUID {
	return c.newAssignmentID
}
