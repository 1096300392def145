package ports

import (
	"context"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"
)

// AssignmentRepository persists assignments and their location samples.
//
// Every lifecycle change and every sample write goes through GetForUpdate
// inside a transaction, which serializes work on one assignment while
// leaving other assignments independent.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, a *assignment.Assignment) error

	// Update persists status and lifecycle fields and appends the samples
	// returned by NewSamples. Samples already stored are left untouched.
	Update(ctx context.Context, a *assignment.Assignment) error

	// Get reads an assignment without locking it.
	// Returns errs.ErrObjectNotFound when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetForUpdate reads and row-locks an assignment until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// FindByJobAndWorker returns the most recent assignment linking jobID and
	// workerID, or errs.ErrObjectNotFound.
	FindByJobAndWorker(ctx context.Context, jobID, workerID kernel.UUID) (*assignment.Assignment, error)

	// ListByJob returns every assignment recorded for jobID, oldest first.
	ListByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error)

	// ListInProgress returns the assignments whose location is being tracked.
	ListInProgress(ctx context.Context) ([]*assignment.Assignment, error)
}

// JobRepository reads jobs from the job directory. The core only writes the status.
type JobRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate row-locks the job, serializing assignment of the same slot.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	UpdateStatus(ctx context.Context, j *job.Job) error
}

// WorkerRepository reads workers from the worker directory together with
// their commitments. The core only writes commitments.
type WorkerRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetForUpdate row-locks the worker, so two assignments cannot check the
	// same calendar concurrently.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// SaveCommitments inserts new commitments and stores release timestamps.
	SaveCommitments(ctx context.Context, w *worker.Worker) error
}
