package commands

import (
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/guard"
)

var ErrApplyForJobCommandIsNotConstructed = errors.New(
	"ApplyForJobCommand must be created via NewApplyForJobCommand constructor",
)

// ApplyForJobCommand records a worker's application for a job. The caller
// picks the new assignment id.
type ApplyForJobCommand struct {
	assignmentID kernel.UUID
	jobID        kernel.UUID
	workerID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewApplyForJobCommand(assignmentID, jobID, workerID kernel.UUID) (ApplyForJobCommand, error) {
	if err := errors.Join(assignmentID.Validate(), jobID.Validate(), workerID.Validate()); err != nil {
		return ApplyForJobCommand{}, err
	}

	return ApplyForJobCommand{
		assignmentID: assignmentID,
		jobID:        jobID,
		workerID:     workerID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyForJobCommand) Validate() error {
	return c.guard.Validate(ErrApplyForJobCommandIsNotConstructed)
}

func (c ApplyForJobCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c ApplyForJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c ApplyForJobCommand) WorkerID() kernel.UUID {
	return c.workerID
}
