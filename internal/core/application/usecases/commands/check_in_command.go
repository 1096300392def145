package commands

import (
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

var ErrCheckInCommandIsNotConstructed = errors.New(
	"CheckInCommand must be created via NewCheckInCommand constructor",
)

// CheckInCommand carries the checkpoint code a worker scanned on site.
type CheckInCommand struct {
	assignmentID kernel.UUID
	scannedCode  string

	guard guard.ConstructorGuard
}

// NewCheckInCommand keeps scannedCode byte for byte; only an empty scan is rejected.
func NewCheckInCommand(assignmentID kernel.UUID, scannedCode string) (CheckInCommand, error) {
	cmd := CheckInCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setScannedCode(scannedCode),
	); err != nil {
		return CheckInCommand{}, err
	}

	return cmd, nil
}

func (c CheckInCommand) Validate() error {
	return c.guard.Validate(ErrCheckInCommandIsNotConstructed)
}

func (c CheckInCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c CheckInCommand) ScannedCode() string {
	return c.scannedCode
}

func (c *CheckInCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.assignmentID = id
	return nil
}

func (c *CheckInCommand) setScannedCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("scanned code")
	}
	c.scannedCode = code
	return nil
}
