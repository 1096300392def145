// Package rotarepo stores company rotas. A rota is a set: adding a member
// twice reports ports.RotaAlreadyExists.
package rotarepo

import (
	"context"
	"errors"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RotaMemberDTO is a row of rota_members.
type RotaMemberDTO struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	AddedAt   time.Time `gorm:"not null"`
}

func (RotaMemberDTO) TableName() string {
	return "rota_members"
}

// GormRotaRepository implements ports.RotaStore using GORM.
type GormRotaRepository struct {
	db *gorm.DB
}

func NewGormRotaRepository(db *gorm.DB) *GormRotaRepository {
	return &GormRotaRepository{db: db}
}

// AddMember inserts with ON CONFLICT DO NOTHING; zero affected rows means
// the worker was already on the rota.
func (r *GormRotaRepository) AddMember(ctx context.Context, companyID, workerID kernel.UUID) (ports.RotaOutcome, error) {
	if err := errors.Join(companyID.Validate(), workerID.Validate()); err != nil {
		return 0, err
	}

	row := RotaMemberDTO{
		CompanyID: companyID.Bytes(),
		WorkerID:  workerID.Bytes(),
		AddedAt:   time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		return ports.RotaAlreadyExists, nil
	}
	return ports.RotaCreated, nil
}
