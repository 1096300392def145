package assignment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
)

// DefaultHistoryLimit caps the in-memory location history.
const DefaultHistoryLimit = 200

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not created via NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("assignment must be created via NewAssignment constructor")

	// ErrNotTracking rejects location samples for assignments that are not InProgress.
	ErrNotTracking = errors.New("assignment is not tracking location")
)

// Assignment is the aggregate root of one worker's shift on one job.
//
// Invariants:
//   - status only advances along the transition graph
//   - acceptedAt, checkedInAt and completedAt are set by the transitions
//     into Assigned, InProgress and a terminal status respectively
//   - location samples are only appended while InProgress
//   - the history holds at most the configured number of most recent samples
type Assignment struct {
	id       kernel.UUID
	jobID    kernel.UUID
	workerID kernel.UUID
	status   Status

	appliedAt    time.Time
	acceptedAt   *time.Time
	checkedInAt  *time.Time
	completedAt  *time.Time
	checkpointID *kernel.UUID
	invoiceID    string

	history      []LocationSample
	nextSequence int64
	outside      bool

	newSamples []LocationSample
	events     []DomainEvent

	isConstructed bool
}

// NewAssignment records an application of workerID for jobID.
func NewAssignment(id, jobID, workerID kernel.UUID, appliedAt time.Time) (*Assignment, error) {
	a := &Assignment{
		status:        Applied,
		appliedAt:     appliedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setIDs(id, jobID, workerID),
		requireTime("applied at", appliedAt),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Snapshot is the persisted state of an assignment.
type Snapshot struct {
	ID           kernel.UUID
	JobID        kernel.UUID
	WorkerID     kernel.UUID
	Status       Status
	AppliedAt    time.Time
	AcceptedAt   *time.Time
	CheckedInAt  *time.Time
	CompletedAt  *time.Time
	CheckpointID *kernel.UUID
	InvoiceID    string

	// History holds the most recent samples, oldest first.
	History      []LocationSample
	NextSequence int64
	Outside      bool
}

// RestoreAssignment rebuilds an assignment from persistence and checks that
// the timestamps agree with the status.
func RestoreAssignment(s Snapshot) (*Assignment, error) {
	a := &Assignment{
		status:        s.Status,
		appliedAt:     s.AppliedAt,
		acceptedAt:    s.AcceptedAt,
		checkedInAt:   s.CheckedInAt,
		completedAt:   s.CompletedAt,
		checkpointID:  s.CheckpointID,
		invoiceID:     s.InvoiceID,
		history:       append([]LocationSample(nil), s.History...),
		nextSequence:  s.NextSequence,
		outside:       s.Outside,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setIDs(s.ID, s.JobID, s.WorkerID),
		s.Status.Validate(),
		requireTime("applied at", s.AppliedAt),
	); err != nil {
		return nil, err
	}

	if err := a.validateLifecycleFields(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID {
	return a.id
}

func (a *Assignment) JobID() kernel.UUID {
	return a.jobID
}

func (a *Assignment) WorkerID() kernel.UUID {
	return a.workerID
}

func (a *Assignment) Status() Status {
	return a.status
}

func (a *Assignment) AppliedAt() time.Time {
	return a.appliedAt
}

func (a *Assignment) AcceptedAt() *time.Time {
	return copyTime(a.acceptedAt)
}

func (a *Assignment) CheckedInAt() *time.Time {
	return copyTime(a.checkedInAt)
}

func (a *Assignment) CompletedAt() *time.Time {
	return copyTime(a.completedAt)
}

// CheckpointID is the checkpoint scanned at check-in, nil before.
func (a *Assignment) CheckpointID() *kernel.UUID {
	if a.checkpointID == nil {
		return nil
	}
	id := *a.checkpointID
	return &id
}

// InvoiceID is empty unless the assignment was completed with an invoice.
func (a *Assignment) InvoiceID() string {
	return a.invoiceID
}

// History returns the retained samples, oldest first.
func (a *Assignment) History() []LocationSample {
	return append([]LocationSample(nil), a.history...)
}

// NextSequence is the sequence the next recorded sample will get.
func (a *Assignment) NextSequence() int64 {
	return a.nextSequence
}

// IsOutside is the outside flag of the latest sample.
func (a *Assignment) IsOutside() bool {
	return a.outside
}

// NewSamples returns the samples recorded since the aggregate was created or
// restored. Repositories persist these.
func (a *Assignment) NewSamples() []LocationSample {
	return append([]LocationSample(nil), a.newSamples...)
}

// PullEvents returns and clears the recorded domain events.
func (a *Assignment) PullEvents() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}

// EnsureCanTransitionTo checks a transition without applying it, so callers
// can run its side effects first.
func (a *Assignment) EnsureCanTransitionTo(next Status) error {
	_, err := a.status.TransitionTo(next)
	return err
}

// Assign accepts the application. The job slot guard lives in the domain
// services; this only moves the state.
func (a *Assignment) Assign(at time.Time) error {
	if err := a.transition(Assigned, at); err != nil {
		return err
	}
	a.acceptedAt = &at
	return nil
}

// CheckIn starts the shift after checkpointID was verified on site.
func (a *Assignment) CheckIn(checkpointID kernel.UUID, at time.Time) error {
	if err := checkpointID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("checkpoint id", err)
	}
	if err := a.transition(InProgress, at); err != nil {
		return err
	}
	a.checkedInAt = &at
	a.checkpointID = &checkpointID
	return nil
}

// Complete ends the shift with the invoice issued for it.
func (a *Assignment) Complete(invoiceID string, at time.Time) error {
	if strings.TrimSpace(invoiceID) == "" {
		return errs.NewValueIsRequiredError("invoice id")
	}
	if err := a.transition(Completed, at); err != nil {
		return err
	}
	a.invoiceID = invoiceID
	a.completedAt = &at
	return nil
}

// BookOff ends the shift on the company's behalf, without an invoice.
func (a *Assignment) BookOff(at time.Time) error {
	if err := a.transition(BookedOff, at); err != nil {
		return err
	}
	a.completedAt = &at
	return nil
}

// RecordLocation measures point against fence and appends the sample,
// evicting the oldest samples beyond historyLimit. A GeofenceBreached event
// is recorded when this sample is outside and the previous one was not.
//
// Example:
//
//	sample, err := a.RecordLocation(j.Geofence(), point, time.Now(), assignment.DefaultHistoryLimit)
//	if errors.Is(err, assignment.ErrNotTracking) {
//	    // the shift already ended
//	}
func (a *Assignment) RecordLocation(
	fence kernel.Geofence,
	point kernel.GeoPoint,
	at time.Time,
	historyLimit int,
) (LocationSample, error) {
	if a.status != InProgress {
		return LocationSample{}, fmt.Errorf("%w: status is %s", ErrNotTracking, a.status)
	}
	if historyLimit <= 0 {
		return LocationSample{}, errs.NewValueIsOutOfRangeError("history limit", historyLimit, 1, "unbounded")
	}

	distance, outside, err := fence.Measure(point)
	if err != nil {
		return LocationSample{}, err
	}

	sample, err := RestoreLocationSample(a.nextSequence, at, point, distance, outside)
	if err != nil {
		return LocationSample{}, err
	}

	a.nextSequence++
	a.history = append(a.history, sample)
	if overflow := len(a.history) - historyLimit; overflow > 0 {
		a.history = append([]LocationSample(nil), a.history[overflow:]...)
	}
	a.newSamples = append(a.newSamples, sample)

	if outside && !a.outside {
		a.events = append(a.events, GeofenceBreached{eventBase: a.eventBase(at), Sample: sample})
	}
	a.outside = outside

	return sample, nil
}

func (a *Assignment) transition(next Status, at time.Time) error {
	if err := requireTime("transition time", at); err != nil {
		return err
	}

	from := a.status
	newStatus, err := from.TransitionTo(next)
	if err != nil {
		return err
	}

	a.status = newStatus
	a.events = append(a.events, StatusChanged{eventBase: a.eventBase(at), From: from, To: newStatus})
	return nil
}

func (a *Assignment) eventBase(at time.Time) eventBase {
	return eventBase{
		assignmentID: a.id,
		jobID:        a.jobID,
		workerID:     a.workerID,
		occurredAt:   at,
	}
}

func (a *Assignment) setIDs(id, jobID, workerID kernel.UUID) error {
	var validationErrs []error
	if err := id.Validate(); err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredErrorWithCause("assignment id", err))
	}
	if err := jobID.Validate(); err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredErrorWithCause("job id", err))
	}
	if err := workerID.Validate(); err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredErrorWithCause("worker id", err))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}

	a.id = id
	a.jobID = jobID
	a.workerID = workerID
	return nil
}

// validateLifecycleFields checks a restored aggregate for timestamps that the
// transitions would have set.
func (a *Assignment) validateLifecycleFields() error {
	var validationErrs []error
	if a.status >= Assigned && a.acceptedAt == nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("accepted at"))
	}
	if a.status >= InProgress && (a.checkedInAt == nil || a.checkpointID == nil) {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("check-in"))
	}
	if a.status.IsTerminal() && a.completedAt == nil {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("completed at"))
	}
	if a.status == Completed && a.invoiceID == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("invoice id"))
	}
	if a.status < InProgress && len(a.history) > 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("history",
			fmt.Errorf("%s assignment cannot have location samples", a.status)))
	}
	if a.nextSequence < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("next sequence",
			fmt.Errorf("%d is negative", a.nextSequence)))
	}
	if n := len(a.history); n > 0 && a.history[n-1].sequence >= a.nextSequence {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("next sequence",
			fmt.Errorf("%d does not follow sample %d", a.nextSequence, a.history[n-1].sequence)))
	}
	return errors.Join(validationErrs...)
}

func requireTime(name string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
