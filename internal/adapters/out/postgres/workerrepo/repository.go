package workerrepo

import (
	"context"
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"
	"attendance/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkerRepository implements ports.WorkerRepository using GORM.
type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Get retrieves a worker with every commitment, released ones included.
func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the worker row. Commitments are only written by
// transactions holding this lock.
func (r *GormWorkerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// SaveCommitments upserts every commitment of the worker. Window and job are
// immutable, so a conflict only updates released_at.
func (r *GormWorkerRepository) SaveCommitments(ctx context.Context, w *worker.Worker) error {
	if err := w.Validate(); err != nil {
		return err
	}

	rows := commitmentsFromDomain(w)
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "worker_id"}, {Name: "job_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"released_at"}),
		}).
		Create(&rows).Error
}

func (r *GormWorkerRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("worker_id = ?", dto.ID).
		Order("window_start").
		Find(&dto.Commitments).Error; err != nil {
		return nil, err
	}

	return ToDomain(dto)
}
