package services

import (
	"errors"
	"fmt"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"
)

// ErrWorkerUnavailable is returned when a worker's commitments block the requested window.
var ErrWorkerUnavailable = errors.New("worker unavailable")

// WorkerUnavailableError names the job whose commitment conflicts.
type WorkerUnavailableError struct {
	WorkerID      kernel.UUID
	ConflictJobID kernel.UUID
}

func (e *WorkerUnavailableError) Error() string {
	return fmt.Sprintf("%s: worker %s is committed to job %s", ErrWorkerUnavailable, e.WorkerID, e.ConflictJobID)
}

func (e *WorkerUnavailableError) Unwrap() error {
	return ErrWorkerUnavailable
}

// ScheduleConflictResolver decides availability from active commitments.
// Released commitments never block.
type ScheduleConflictResolver struct{}

func NewScheduleConflictResolver() ScheduleConflictResolver {
	return ScheduleConflictResolver{}
}

// IsAvailable is true iff no active commitment of w overlaps window.
func (r ScheduleConflictResolver) IsAvailable(w *worker.Worker, window kernel.TimeWindow) bool {
	return r.conflict(w, window) == nil
}

// EnsureAvailable returns a *WorkerUnavailableError for the first conflicting commitment.
func (r ScheduleConflictResolver) EnsureAvailable(w *worker.Worker, window kernel.TimeWindow) error {
	if err := errors.Join(w.Validate(), window.Validate()); err != nil {
		return err
	}
	if c := r.conflict(w, window); c != nil {
		return &WorkerUnavailableError{WorkerID: w.ID(), ConflictJobID: c.JobID()}
	}
	return nil
}

// FilterAvailable keeps the available workers in their input order.
func (r ScheduleConflictResolver) FilterAvailable(workers []*worker.Worker, window kernel.TimeWindow) []*worker.Worker {
	available := make([]*worker.Worker, 0, len(workers))
	for _, w := range workers {
		if r.IsAvailable(w, window) {
			available = append(available, w)
		}
	}
	return available
}

func (ScheduleConflictResolver) conflict(w *worker.Worker, window kernel.TimeWindow) *worker.Commitment {
	for _, c := range w.ActiveCommitments() {
		if c.Window().Overlaps(window) {
			return c
		}
	}
	return nil
}
