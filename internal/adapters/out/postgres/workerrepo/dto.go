// Package workerrepo maps workers and their commitments to the workers and
// worker_commitments tables.
package workerrepo

import (
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO is a row of the workers table.
type WorkerDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Email       string          `gorm:"type:varchar(255);not null;default:''"`
	Phone       string          `gorm:"type:varchar(64);not null;default:''"`
	City        string          `gorm:"type:varchar(255);not null;default:''"`
	Commitments []CommitmentDTO `gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

func (WorkerDTO) TableName() string {
	return "workers"
}

// CommitmentDTO is a row of worker_commitments. A released commitment stays
// as history with ReleasedAt set.
type CommitmentDTO struct {
	WorkerID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JobID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WindowStart time.Time  `gorm:"not null"`
	WindowEnd   time.Time  `gorm:"not null"`
	ReleasedAt  *time.Time
}

func (CommitmentDTO) TableName() string {
	return "worker_commitments"
}

// FromDomain converts a worker to its rows.
func FromDomain(w *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:          w.ID().Bytes(),
		Name:        w.Name(),
		Email:       w.Email(),
		Phone:       w.Phone(),
		City:        w.City(),
		Commitments: commitmentsFromDomain(w),
	}
}

func commitmentsFromDomain(w *worker.Worker) []CommitmentDTO {
	workerID := w.ID().Bytes()
	out := make([]CommitmentDTO, 0, len(w.Commitments()))
	for _, c := range w.Commitments() {
		out = append(out, CommitmentDTO{
			WorkerID:    workerID,
			JobID:       c.JobID().Bytes(),
			WindowStart: c.Window().Start(),
			WindowEnd:   c.Window().End(),
			ReleasedAt:  c.ReleasedAt(),
		})
	}
	return out
}

// ToDomain rebuilds a worker. Read models outside this package reuse it.
func ToDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	commitments := make([]*worker.Commitment, 0, len(dto.Commitments))
	for _, cDto := range dto.Commitments {
		c, cErr := commitmentToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		commitments = append(commitments, c)
	}

	return worker.RestoreWorker(id, dto.Name, worker.Contact{
		Email: dto.Email,
		Phone: dto.Phone,
		City:  dto.City,
	}, commitments)
}

func commitmentToDomain(dto CommitmentDTO) (*worker.Commitment, error) {
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	return worker.RestoreCommitment(jobID, window, dto.ReleasedAt)
}
