package queries

import (
	"errors"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

// DefaultRecentSamples is how many samples GetAssignmentQuery returns when
// no limit is given.
const DefaultRecentSamples = 20

var ErrGetAssignmentQueryIsNotConstructed = errors.New(
	"GetAssignmentQuery must be created via NewGetAssignmentQuery constructor",
)

// GetAssignmentQuery reads one assignment with its job, worker and the most
// recent location samples.
type GetAssignmentQuery struct {
	assignmentID kernel.UUID
	recent       int

	guard guard.ConstructorGuard
}

// NewGetAssignmentQuery builds the query. recent <= 0 means DefaultRecentSamples.
func NewGetAssignmentQuery(assignmentID kernel.UUID, recent int) (GetAssignmentQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return GetAssignmentQuery{}, err
	}
	if recent <= 0 {
		recent = DefaultRecentSamples
	}
	return GetAssignmentQuery{assignmentID: assignmentID, recent: recent, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentQueryIsNotConstructed)
}

func (q GetAssignmentQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}

func (q GetAssignmentQuery) Recent() int {
	return q.recent
}

// AssignmentView is the operator read model of an assignment.
type AssignmentView struct {
	ID              kernel.UUID
	Status          string
	JobID           kernel.UUID
	JobTitle        string
	CompanyID       kernel.UUID
	WorkerID        kernel.UUID
	WorkerName      string
	AppliedAt       time.Time
	AcceptedAt      *time.Time
	CheckedInAt     *time.Time
	CompletedAt     *time.Time
	CheckpointName  string
	InvoiceID       string
	OutsideGeofence bool
	// RecentSamples is oldest first.
	RecentSamples []SampleView
}

// SampleView is one stored location sample.
type SampleView struct {
	Sequence        int64
	RecordedAt      time.Time
	Latitude        float64
	Longitude       float64
	DistanceMeters  float64
	OutsideGeofence bool
}

func assignmentNotFound(id kernel.UUID) error {
	return errs.NewObjectNotFoundError("assignment", id.String())
}
