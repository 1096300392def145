package commands

import (
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/guard"
)

var ErrAddToRotaCommandIsNotConstructed = errors.New(
	"AddToRotaCommand must be created via NewAddToRotaCommand constructor",
)

// AddToRotaCommand puts a worker on a company's rota.
type AddToRotaCommand struct {
	companyID kernel.UUID
	workerID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddToRotaCommand(companyID, workerID kernel.UUID) (AddToRotaCommand, error) {
	if err := errors.Join(companyID.Validate(), workerID.Validate()); err != nil {
		return AddToRotaCommand{}, err
	}
	return AddToRotaCommand{companyID: companyID, workerID: workerID, guard: guard.NewConstructorGuard()}, nil
}

func (c AddToRotaCommand) Validate() error {
	return c.guard.Validate(ErrAddToRotaCommandIsNotConstructed)
}

func (c AddToRotaCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c AddToRotaCommand) WorkerID() kernel.UUID {
	return c.workerID
}
