// Package postgres provides the GORM-based Unit of Work and the embedded
// schema migrations.
//
// A unit of work wraps one database transaction. Repositories obtained after
// Begin run inside it, so a lifecycle change of an assignment, its job and
// its worker commits or rolls back as a whole:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	j, err := uow.JobRepository().GetForUpdate(ctx, jobID)
//	// ...
//	return uow.Commit(ctx)
//
// Rollback after Commit is a no-op returning gorm.ErrInvalidTransaction,
// which the deferred call ignores.
//
// Each UnitOfWork instance belongs to a single goroutine.
package postgres

import (
	"context"

	"attendance/internal/adapters/out/postgres/assignmentrepo"
	"attendance/internal/adapters/out/postgres/jobrepo"
	"attendance/internal/adapters/out/postgres/workerrepo"
	"attendance/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db           *gorm.DB
	historyLimit int
}

// NewGormUnitOfWorkFactory creates a factory. historyLimit bounds the number
// of location samples loaded with, and kept for, each assignment.
func NewGormUnitOfWorkFactory(db *gorm.DB, historyLimit int) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, historyLimit: historyLimit}
}

// Create produces a new UnitOfWork with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, historyLimit: f.historyLimit}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db           *gorm.DB
	tx           *gorm.DB
	historyLimit int
}

// Begin starts the transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// AssignmentRepository returns a repository bound to the current transaction,
// or to the pool when none is active.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn(), uow.historyLimit)
}

func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn())
}

func (uow *GormUnitOfWork) WorkerRepository() ports.WorkerRepository {
	return workerrepo.NewGormWorkerRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
