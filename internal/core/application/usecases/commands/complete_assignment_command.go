package commands

import (
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/guard"
)

var ErrCompleteAssignmentCommandIsNotConstructed = errors.New(
	"CompleteAssignmentCommand must be created via NewCompleteAssignmentCommand constructor",
)

// CompleteAssignmentCommand is the worker booking off at the end of a shift.
type CompleteAssignmentCommand struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteAssignmentCommand(assignmentID kernel.UUID) (CompleteAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return CompleteAssignmentCommand{}, err
	}
	return CompleteAssignmentCommand{assignmentID: assignmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAssignmentCommandIsNotConstructed)
}

func (c CompleteAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
