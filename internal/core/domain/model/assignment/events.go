package assignment

import (
	"time"

	"attendance/internal/core/domain/model/kernel"
)

// Event names used on the operator stream.
const (
	EventGeofenceBreached = "assignment.geofence_breached"
	EventTrackingDegraded = "assignment.tracking_degraded"
	EventStatusChanged    = "assignment.status_changed"
)

// DomainEvent is something that happened to an assignment.
type DomainEvent interface {
	EventName() string
	AssignmentID() kernel.UUID
	OccurredAt() time.Time
}

type eventBase struct {
	assignmentID kernel.UUID
	jobID        kernel.UUID
	workerID     kernel.UUID
	occurredAt   time.Time
}

func (e eventBase) AssignmentID() kernel.UUID {
	return e.assignmentID
}

func (e eventBase) JobID() kernel.UUID {
	return e.jobID
}

func (e eventBase) WorkerID() kernel.UUID {
	return e.workerID
}

func (e eventBase) OccurredAt() time.Time {
	return e.occurredAt
}

// GeofenceBreached is recorded once per excursion, on the sample that first
// lands outside the fence.
type GeofenceBreached struct {
	eventBase
	Sample LocationSample
}

func (GeofenceBreached) EventName() string {
	return EventGeofenceBreached
}

// TrackingDegraded reports that the location feed returned nothing for
// ConsecutiveMisses ticks in a row. It is a warning; tracking continues.
type TrackingDegraded struct {
	eventBase
	ConsecutiveMisses int
}

func (TrackingDegraded) EventName() string {
	return EventTrackingDegraded
}

// NewTrackingDegraded builds the degradation event for a.
func NewTrackingDegraded(a *Assignment, misses int, at time.Time) TrackingDegraded {
	return TrackingDegraded{eventBase: a.eventBase(at), ConsecutiveMisses: misses}
}

// StatusChanged is recorded on every accepted transition.
type StatusChanged struct {
	eventBase
	From Status
	To   Status
}

func (StatusChanged) EventName() string {
	return EventStatusChanged
}
