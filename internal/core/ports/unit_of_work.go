package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code manages the
// transaction lifecycle explicitly; repositories returned after Begin use
// the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	AssignmentRepository() AssignmentRepository
	JobRepository() JobRepository
	WorkerRepository() WorkerRepository
}
