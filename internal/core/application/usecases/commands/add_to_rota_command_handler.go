package commands

import (
	"context"

	"attendance/internal/core/ports"
)

// AddToRotaCommandHandler is duplicate tolerant: adding a worker twice
// returns ports.RotaAlreadyExists, not an error.
type AddToRotaCommandHandler struct {
	rota    ports.RotaStore
	workers ports.WorkerRepository
}

func NewAddToRotaCommandHandler(rota ports.RotaStore, workers ports.WorkerRepository) AddToRotaCommandHandler {
	return AddToRotaCommandHandler{rota: rota, workers: workers}
}

func (h AddToRotaCommandHandler) Handle(ctx context.Context, cmd AddToRotaCommand) (ports.RotaOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if _, err := h.workers.Get(ctx, cmd.WorkerID()); err != nil {
		return 0, err
	}

	return h.rota.AddMember(ctx, cmd.CompanyID(), cmd.WorkerID())
}
