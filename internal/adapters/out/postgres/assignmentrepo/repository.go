package assignmentrepo

import (
	"context"
	"errors"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recentSamplesSQL loads the newest samples of several assignments at once.
const recentSamplesSQL = `
	SELECT assignment_id, sequence, recorded_at, latitude, longitude, distance_meters, outside_geofence
	FROM (
		SELECT ls.*, ROW_NUMBER() OVER (PARTITION BY ls.assignment_id ORDER BY ls.sequence DESC) AS rn
		FROM location_samples ls
		WHERE ls.assignment_id = ANY(?::uuid[])
	) recent
	WHERE recent.rn <= ?
`

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db           *gorm.DB
	historyLimit int
}

// NewGormAssignmentRepository creates a repository keeping at most
// historyLimit samples per assignment. A limit <= 0 means the default.
func NewGormAssignmentRepository(db *gorm.DB, historyLimit int) *GormAssignmentRepository {
	if historyLimit <= 0 {
		historyLimit = assignment.DefaultHistoryLimit
	}
	return &GormAssignmentRepository{db: db, historyLimit: historyLimit}
}

func (r *GormAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	return r.appendSamples(ctx, a)
}

// Update stores the lifecycle fields, appends new samples and drops stored
// samples that fell out of the bounded history.
func (r *GormAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "job_id", "worker_id", "applied_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", a.ID().String())
	}

	if err := r.appendSamples(ctx, a); err != nil {
		return err
	}

	history := a.History()
	if len(history) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("assignment_id = ? AND sequence < ?", dto.ID, history[0].Sequence()).
		Delete(&LocationSampleDTO{}).Error
}

func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate locks the assignment row with SELECT ... FOR UPDATE.
func (r *GormAssignmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormAssignmentRepository) FindByJobAndWorker(
	ctx context.Context,
	jobID, workerID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := errors.Join(jobID.Validate(), workerID.Validate()); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND worker_id = ?", jobID.Bytes(), workerID.Bytes()).
		Order("applied_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment for job and worker", jobID.String()+"/"+workerID.String())
		}
		return nil, err
	}

	return r.restoreOne(ctx, dto)
}

func (r *GormAssignmentRepository) ListByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID.Bytes()).
		Order("applied_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return r.restoreAll(ctx, dtos)
}

func (r *GormAssignmentRepository) ListInProgress(ctx context.Context) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", assignment.InProgress.String()).
		Order("checked_in_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return r.restoreAll(ctx, dtos)
}

func (r *GormAssignmentRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return r.restoreOne(ctx, dto)
}

func (r *GormAssignmentRepository) restoreOne(ctx context.Context, dto AssignmentDTO) (*assignment.Assignment, error) {
	list, err := r.restoreAll(ctx, []AssignmentDTO{dto})
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

func (r *GormAssignmentRepository) restoreAll(ctx context.Context, dtos []AssignmentDTO) ([]*assignment.Assignment, error) {
	out := make([]*assignment.Assignment, 0, len(dtos))
	if len(dtos) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID.String())
	}

	var samples []LocationSampleDTO
	if err := r.db.WithContext(ctx).
		Raw(recentSamplesSQL, pq.Array(ids), r.historyLimit).
		Scan(&samples).Error; err != nil {
		return nil, err
	}

	byAssignment := make(map[uuid.UUID][]LocationSampleDTO, len(dtos))
	for _, s := range samples {
		byAssignment[s.AssignmentID] = append(byAssignment[s.AssignmentID], s)
	}

	for _, dto := range dtos {
		a, err := toDomain(dto, byAssignment[dto.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *GormAssignmentRepository) appendSamples(ctx context.Context, a *assignment.Assignment) error {
	rows := samplesFromDomain(a.ID(), a.NewSamples())
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
