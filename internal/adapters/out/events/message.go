// Package events delivers assignment events to operators: a websocket hub
// for live dashboards, a zap log publisher and a fan-out combining them.
package events

import (
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"
)

// Message is the JSON frame sent for every event.
type Message struct {
	Type         string    `json:"type"`
	AssignmentID string    `json:"assignmentId"`
	JobID        string    `json:"jobId,omitempty"`
	WorkerID     string    `json:"workerId,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`

	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	Sample            *SamplePayload `json:"sample,omitempty"`
	ConsecutiveMisses int            `json:"consecutiveMisses,omitempty"`
}

type SamplePayload struct {
	Sequence       int64     `json:"sequence"`
	RecordedAt     time.Time `json:"recordedAt"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distanceMeters"`
}

type participants interface {
	JobID() kernel.UUID
	WorkerID() kernel.UUID
}

// NewMessage flattens a domain event into its wire frame.
func NewMessage(e assignment.DomainEvent) Message {
	msg := Message{
		Type:         e.EventName(),
		AssignmentID: e.AssignmentID().String(),
		OccurredAt:   e.OccurredAt().UTC(),
	}
	if p, ok := e.(participants); ok {
		msg.JobID = p.JobID().String()
		msg.WorkerID = p.WorkerID().String()
	}

	switch ev := e.(type) {
	case assignment.GeofenceBreached:
		msg.Sample = &SamplePayload{
			Sequence:       ev.Sample.Sequence(),
			RecordedAt:     ev.Sample.RecordedAt().UTC(),
			Latitude:       ev.Sample.Point().Latitude(),
			Longitude:      ev.Sample.Point().Longitude(),
			DistanceMeters: ev.Sample.DistanceMeters(),
		}
	case assignment.TrackingDegraded:
		msg.ConsecutiveMisses = ev.ConsecutiveMisses
	case assignment.StatusChanged:
		msg.From = ev.From.String()
		msg.To = ev.To.String()
	}
	return msg
}
