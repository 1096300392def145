package commands

import (
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/guard"
)

var ErrBookOffCommandIsNotConstructed = errors.New(
	"BookOffCommand must be created via NewBookOffCommand constructor",
)

// BookOffCommand is a company closing a shift on the worker's behalf.
type BookOffCommand struct {
	companyID    kernel.UUID
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBookOffCommand(companyID, assignmentID kernel.UUID) (BookOffCommand, error) {
	if err := errors.Join(companyID.Validate(), assignmentID.Validate()); err != nil {
		return BookOffCommand{}, err
	}
	return BookOffCommand{
		companyID:    companyID,
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c BookOffCommand) Validate() error {
	return c.guard.Validate(ErrBookOffCommandIsNotConstructed)
}

func (c BookOffCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c BookOffCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
