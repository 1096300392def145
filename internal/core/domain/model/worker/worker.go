package worker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
)

// ErrWorkerIsNotConstructed is returned when a Worker was not created via NewWorker or RestoreWorker.
var ErrWorkerIsNotConstructed = errors.New("worker must be created via NewWorker constructor")

// Worker is a job seeker with their calendar of commitments.
//
// Invariants:
//   - a name is always present
//   - at most one active commitment per job
//
// Non-overlap of active commitments is not checked here; it is enforced when
// a worker is assigned, see services.ScheduleConflictResolver.
type Worker struct {
	id          kernel.UUID
	name        string
	email       string
	phone       string
	city        string
	commitments []*Commitment

	isConstructed bool
}

// Contact groups the optional directory attributes used by search filters.
type Contact struct {
	Email string
	Phone string
	City  string
}

// NewWorker creates a worker with an empty calendar.
func NewWorker(id kernel.UUID, name string, contact Contact) (*Worker, error) {
	return RestoreWorker(id, name, contact, nil)
}

// RestoreWorker rebuilds a worker from the directory with their commitments.
func RestoreWorker(id kernel.UUID, name string, contact Contact, commitments []*Commitment) (*Worker, error) {
	w := &Worker{
		email:         strings.TrimSpace(contact.Email),
		phone:         strings.TrimSpace(contact.Phone),
		city:          strings.TrimSpace(contact.City),
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setCommitments(commitments),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

func (w *Worker) IsEqual(other *Worker) bool {
	return other != nil && w.id.IsEqual(other.id)
}

func (w *Worker) ID() kernel.UUID {
	return w.id
}

func (w *Worker) Name() string {
	return w.name
}

func (w *Worker) Email() string {
	return w.email
}

func (w *Worker) Phone() string {
	return w.phone
}

func (w *Worker) City() string {
	return w.city
}

// Commitments returns every commitment, released ones included.
func (w *Worker) Commitments() []*Commitment {
	out := make([]*Commitment, len(w.commitments))
	copy(out, w.commitments)
	return out
}

// ActiveCommitments returns the commitments that still block the calendar.
func (w *Worker) ActiveCommitments() []*Commitment {
	var active []*Commitment
	for _, c := range w.commitments {
		if c.IsActive() {
			active = append(active, c)
		}
	}
	return active
}

// Commit reserves window for jobID.
func (w *Worker) Commit(jobID kernel.UUID, window kernel.TimeWindow) error {
	if c := w.activeCommitmentFor(jobID); c != nil {
		return errs.NewValueIsInvalidErrorWithCause("commitment",
			fmt.Errorf("worker %s already committed to job %s", w.id, jobID))
	}

	c, err := NewCommitment(jobID, window)
	if err != nil {
		return err
	}
	w.commitments = append(w.commitments, c)
	return nil
}

// Release archives the active commitment for jobID.
func (w *Worker) Release(jobID kernel.UUID, at time.Time) error {
	c := w.activeCommitmentFor(jobID)
	if c == nil {
		return errs.NewObjectNotFoundError("active commitment for job", jobID)
	}
	c.releasedAt = &at
	return nil
}

// Matches is the free-text search filter: a case-insensitive substring match
// on name, email, phone and city. An empty query matches everyone.
func (w *Worker) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{w.name, w.email, w.phone, w.city} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (w *Worker) activeCommitmentFor(jobID kernel.UUID) *Commitment {
	for _, c := range w.commitments {
		if c.IsActive() && c.jobID.IsEqual(jobID) {
			return c
		}
	}
	return nil
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Worker) setCommitments(commitments []*Commitment) error {
	seen := make(map[kernel.UUID]struct{})
	for _, c := range commitments {
		if c == nil {
			return errs.NewValueIsRequiredError("commitment")
		}
		if !c.IsActive() {
			continue
		}
		if _, dup := seen[c.jobID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("commitment",
				fmt.Errorf("two active commitments for job %s", c.jobID))
		}
		seen[c.jobID] = struct{}{}
	}
	w.commitments = append([]*Commitment(nil), commitments...)
	return nil
}
