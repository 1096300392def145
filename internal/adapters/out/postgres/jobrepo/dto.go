// Package jobrepo maps job aggregates to the jobs and checkpoints tables.
// Jobs belong to the job directory; the attendance engine only writes their status.
package jobrepo

import (
	"time"

	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is a row of the jobs table.
type JobDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(255);not null"`
	SiteLatitude  float64         `gorm:"not null"`
	SiteLongitude float64         `gorm:"not null"`
	RadiusMeters  float64         `gorm:"not null;default:500"`
	WorkDate      time.Time       `gorm:"type:date;not null"`
	StartMinutes  int             `gorm:"type:smallint;not null"`
	EndMinutes    *int            `gorm:"type:smallint"`
	HourlyRate    float64         `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"type:varchar(16);not null"`
	Checkpoints   []CheckpointDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

// CheckpointDTO is a row of the checkpoints table. Position keeps the
// declared order of the job's checkpoints.
type CheckpointDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Code     string    `gorm:"type:varchar(255);not null"`
}

func (CheckpointDTO) TableName() string {
	return "checkpoints"
}

// FromDomain converts a job to its rows. Seeding and tests use it to fill the directory.
func FromDomain(j *job.Job) JobDTO {
	jobID := j.ID().Bytes()
	schedule := j.Schedule()

	var endMinutes *int
	if end := schedule.End(); end != nil {
		m := end.MinutesSinceMidnight()
		endMinutes = &m
	}

	checkpoints := make([]CheckpointDTO, 0, len(j.Checkpoints()))
	for i, c := range j.Checkpoints() {
		checkpoints = append(checkpoints, CheckpointDTO{
			ID:       c.ID().Bytes(),
			JobID:    jobID,
			Position: i,
			Name:     c.Name(),
			Code:     c.Code(),
		})
	}

	return JobDTO{
		ID:            jobID,
		CompanyID:     j.CompanyID().Bytes(),
		Title:         j.Title(),
		SiteLatitude:  j.Site().Latitude(),
		SiteLongitude: j.Site().Longitude(),
		RadiusMeters:  j.Geofence().RadiusMeters(),
		WorkDate:      schedule.WorkDate(),
		StartMinutes:  schedule.Start().MinutesSinceMidnight(),
		EndMinutes:    endMinutes,
		HourlyRate:    j.HourlyRate(),
		Status:        j.Status().String(),
		Checkpoints:   checkpoints,
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	site, err := kernel.NewGeoPoint(dto.SiteLatitude, dto.SiteLongitude)
	if err != nil {
		return nil, err
	}

	schedule, err := scheduleToDomain(dto)
	if err != nil {
		return nil, err
	}

	status, err := job.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	checkpoints := make([]*job.Checkpoint, 0, len(dto.Checkpoints))
	for _, cpDto := range dto.Checkpoints {
		cpID, idErr := kernel.UUIDFromBytes(cpDto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		cp, cpErr := job.NewCheckpoint(cpID, cpDto.Name, cpDto.Code)
		if cpErr != nil {
			return nil, cpErr
		}
		checkpoints = append(checkpoints, cp)
	}

	return job.RestoreJob(id, companyID, dto.Title, site, dto.RadiusMeters, schedule, dto.HourlyRate, checkpoints, status)
}

func scheduleToDomain(dto JobDTO) (job.Schedule, error) {
	start, err := kernel.ClockTimeFromMinutes(dto.StartMinutes)
	if err != nil {
		return job.Schedule{}, err
	}

	var end *kernel.ClockTime
	if dto.EndMinutes != nil {
		e, endErr := kernel.ClockTimeFromMinutes(*dto.EndMinutes)
		if endErr != nil {
			return job.Schedule{}, endErr
		}
		end = &e
	}

	return job.NewSchedule(dto.WorkDate, start, end)
}
