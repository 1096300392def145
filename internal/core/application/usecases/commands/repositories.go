// Package commands contains the operations that change attendance state.
// Each command is built by a constructor that validates its input, and each
// handler runs inside one unit of work.
//
// Row locks are always taken in the order job, worker, assignment, so
// concurrent handlers on the same job cannot deadlock. The geofence monitor
// only locks the assignment.
package commands

import (
	"context"

	"attendance/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// TrackingUoW is enough for recording location samples.
	TrackingUoW interface {
		TxManager
		AssignmentRepoFactory
		JobRepoFactory
	}

	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// UoW spans every aggregate touched by an assignment lifecycle change.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   j, err := uow.JobRepository().GetForUpdate(ctx, jobID)
	//   w, err := uow.WorkerRepository().GetForUpdate(ctx, workerID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AssignmentRepoFactory
		JobRepoFactory
		WorkerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
