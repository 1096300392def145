// Package assignmentrepo maps assignments to the assignments table and their
// location history to location_samples.
package assignmentrepo

import (
	"slices"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO is a row of the assignments table.
type AssignmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JobID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status          string     `gorm:"type:varchar(16);not null"`
	AppliedAt       time.Time  `gorm:"not null"`
	AcceptedAt      *time.Time
	CheckedInAt     *time.Time
	CompletedAt     *time.Time
	CheckpointID    *uuid.UUID `gorm:"type:uuid"`
	InvoiceID       string     `gorm:"type:varchar(255);not null;default:''"`
	NextSequence    int64      `gorm:"not null;default:0"`
	OutsideGeofence bool       `gorm:"not null;default:false"`
}

func (AssignmentDTO) TableName() string {
	return "assignments"
}

// LocationSampleDTO is a row of location_samples keyed by (assignment_id, sequence).
type LocationSampleDTO struct {
	AssignmentID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence        int64     `gorm:"primaryKey;autoIncrement:false"`
	RecordedAt      time.Time `gorm:"not null"`
	Latitude        float64   `gorm:"not null"`
	Longitude       float64   `gorm:"not null"`
	DistanceMeters  float64   `gorm:"not null"`
	OutsideGeofence bool      `gorm:"not null"`
}

func (LocationSampleDTO) TableName() string {
	return "location_samples"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	var checkpointID *uuid.UUID
	if id := a.CheckpointID(); id != nil {
		raw := id.Bytes()
		checkpointID = &raw
	}

	return AssignmentDTO{
		ID:              a.ID().Bytes(),
		JobID:           a.JobID().Bytes(),
		WorkerID:        a.WorkerID().Bytes(),
		Status:          a.Status().String(),
		AppliedAt:       a.AppliedAt(),
		AcceptedAt:      a.AcceptedAt(),
		CheckedInAt:     a.CheckedInAt(),
		CompletedAt:     a.CompletedAt(),
		CheckpointID:    checkpointID,
		InvoiceID:       a.InvoiceID(),
		NextSequence:    a.NextSequence(),
		OutsideGeofence: a.IsOutside(),
	}
}

func samplesFromDomain(assignmentID kernel.UUID, samples []assignment.LocationSample) []LocationSampleDTO {
	id := assignmentID.Bytes()
	out := make([]LocationSampleDTO, 0, len(samples))
	for _, s := range samples {
		out = append(out, LocationSampleDTO{
			AssignmentID:    id,
			Sequence:        s.Sequence(),
			RecordedAt:      s.RecordedAt(),
			Latitude:        s.Point().Latitude(),
			Longitude:       s.Point().Longitude(),
			DistanceMeters:  s.DistanceMeters(),
			OutsideGeofence: s.OutsideGeofence(),
		})
	}
	return out
}

// toDomain rebuilds an assignment. samples may come in any order.
func toDomain(dto AssignmentDTO, samples []LocationSampleDTO) (*assignment.Assignment, error) {
	ids := make([]kernel.UUID, 0, 3)
	for _, raw := range []uuid.UUID{dto.ID, dto.JobID, dto.WorkerID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	status, err := assignment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var checkpointID *kernel.UUID
	if dto.CheckpointID != nil {
		id, idErr := kernel.UUIDFromBytes(dto.CheckpointID[:])
		if idErr != nil {
			return nil, idErr
		}
		checkpointID = &id
	}

	history, err := samplesToDomain(samples)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(assignment.Snapshot{
		ID:           ids[0],
		JobID:        ids[1],
		WorkerID:     ids[2],
		Status:       status,
		AppliedAt:    dto.AppliedAt,
		AcceptedAt:   dto.AcceptedAt,
		CheckedInAt:  dto.CheckedInAt,
		CompletedAt:  dto.CompletedAt,
		CheckpointID: checkpointID,
		InvoiceID:    dto.InvoiceID,
		History:      history,
		NextSequence: dto.NextSequence,
		Outside:      dto.OutsideGeofence,
	})
}

func samplesToDomain(dtos []LocationSampleDTO) ([]assignment.LocationSample, error) {
	sorted := slices.Clone(dtos)
	slices.SortFunc(sorted, func(a, b LocationSampleDTO) int {
		switch {
		case a.Sequence < b.Sequence:
			return -1
		case a.Sequence > b.Sequence:
			return 1
		default:
			return 0
		}
	})

	out := make([]assignment.LocationSample, 0, len(sorted))
	for _, dto := range sorted {
		point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
		if err != nil {
			return nil, err
		}
		s, err := assignment.RestoreLocationSample(dto.Sequence, dto.RecordedAt, point, dto.DistanceMeters, dto.OutsideGeofence)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
