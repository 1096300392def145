package ports

import (
	"context"
	"errors"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"
)

// ErrLocationUnavailable means the feed has no usable position for the
// worker yet. The geofence monitor treats it as a skipped tick.
var ErrLocationUnavailable = errors.New("location unavailable")

// LocationFix is a position reported by a worker's device.
type LocationFix struct {
	Point      kernel.GeoPoint
	ReportedAt time.Time
}

// LocationProvider returns the latest position of a worker, or
// ErrLocationUnavailable.
type LocationProvider interface {
	CurrentLocation(ctx context.Context, workerID kernel.UUID) (LocationFix, error)
}

// LocationSink accepts positions pushed by the worker app.
type LocationSink interface {
	ReportLocation(ctx context.Context, workerID kernel.UUID, fix LocationFix) error
}

// InvoiceRequest is sent once when an assignment completes. Hours come from
// the job's declared schedule.
type InvoiceRequest struct {
	AssignmentID kernel.UUID
	JobID        kernel.UUID
	WorkerID     kernel.UUID
	CompanyID    kernel.UUID
	HoursWorked  float64
	PricePerHour float64
	TotalPrice   float64
}

// InvoiceService creates invoices. Implementations must treat AssignmentID
// as an idempotency key.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (invoiceID string, err error)
}

// RotaOutcome tells whether AddMember changed the rota.
type RotaOutcome int

const (
	RotaCreated RotaOutcome = iota + 1
	RotaAlreadyExists
)

func (o RotaOutcome) String() string {
	switch o {
	case RotaCreated:
		return "created"
	case RotaAlreadyExists:
		return "alreadyExists"
	default:
		return "unknown"
	}
}

// RotaStore keeps the set of workers on a company's rota.
type RotaStore interface {
	AddMember(ctx context.Context, companyID, workerID kernel.UUID) (RotaOutcome, error)
}

// EventPublisher delivers domain events to operators.
// A failed publish never undoes the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...assignment.DomainEvent) error
}

// TrackingController starts and stops the geofence monitor of an assignment.
type TrackingController interface {
	// StartTracking begins monitoring. Starting an already tracked
	// assignment is a no-op.
	StartTracking(ctx context.Context, assignmentID kernel.UUID) error

	// StopTracking stops monitoring and returns once no tick is running.
	StopTracking(ctx context.Context, assignmentID kernel.UUID) error
}
