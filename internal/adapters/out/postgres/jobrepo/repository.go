package jobrepo

import (
	"context"
	"errors"

	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db *gorm.DB
}

func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Get retrieves a job with its checkpoints in declared order.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the job row with SELECT ... FOR UPDATE. Checkpoints are
// read without a lock, they never change.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// UpdateStatus writes only the status column.
func (r *GormJobRepository) UpdateStatus(ctx context.Context, j *job.Job) error {
	if err := j.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", j.ID().Bytes()).
		Update("status", j.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("job", j.ID().String())
	}
	return nil
}

func (r *GormJobRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("job_id = ?", dto.ID).
		Order("position").
		Find(&dto.Checkpoints).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
