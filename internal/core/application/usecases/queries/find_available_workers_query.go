// Package queries contains the read operations of the attendance engine.
// Queries read with plain SQL and return read models shaped for the caller,
// not aggregates.
package queries

import (
	"errors"
	"fmt"
	"strings"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

var ErrFindAvailableWorkersQueryIsNotConstructed = errors.New(
	"FindAvailableWorkersQuery must be created via NewFindAvailableWorkersQuery constructor",
)

// WorkerPool selects the candidates of an availability search.
//
// With WorkerIDs set the result keeps their order; RotaOf searches a
// company's rota in the order members were added. The zero pool searches the
// whole directory by name.
type WorkerPool struct {
	WorkerIDs []kernel.UUID
	RotaOf    *kernel.UUID
}

// FindAvailableWorkersQuery finds workers free for a window, optionally
// narrowed by a free-text filter on name, email, phone and city.
//
// Example:
//
//	window, _ := kernel.NewTimeWindow(start, end)
//	query, err := NewFindAvailableWorkersQuery(window, WorkerPool{RotaOf: &companyID}, "mansehra")
//	workers, err := handler.Handle(ctx, query)
type FindAvailableWorkersQuery struct {
	window kernel.TimeWindow
	pool   WorkerPool
	filter string

	guard guard.ConstructorGuard
}

func NewFindAvailableWorkersQuery(window kernel.TimeWindow, pool WorkerPool, filter string) (FindAvailableWorkersQuery, error) {
	var validationErrs []error
	validationErrs = append(validationErrs, window.Validate())

	if pool.RotaOf != nil {
		validationErrs = append(validationErrs, pool.RotaOf.Validate())
		if len(pool.WorkerIDs) > 0 {
			validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("pool",
				fmt.Errorf("worker ids and rota are mutually exclusive")))
		}
	}
	for _, id := range pool.WorkerIDs {
		validationErrs = append(validationErrs, id.Validate())
	}

	if err := errors.Join(validationErrs...); err != nil {
		return FindAvailableWorkersQuery{}, err
	}

	return FindAvailableWorkersQuery{
		window: window,
		pool: WorkerPool{
			WorkerIDs: append([]kernel.UUID(nil), pool.WorkerIDs...),
			RotaOf:    pool.RotaOf,
		},
		filter: strings.TrimSpace(filter),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q FindAvailableWorkersQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableWorkersQueryIsNotConstructed)
}

func (q FindAvailableWorkersQuery) Window() kernel.TimeWindow {
	return q.window
}

func (q FindAvailableWorkersQuery) Pool() WorkerPool {
	return q.pool
}

func (q FindAvailableWorkersQuery) Filter() string {
	return q.filter
}

// AvailableWorker is one search hit.
type AvailableWorker struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
	City  string
}
