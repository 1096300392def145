package services

import (
	"errors"
	"fmt"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"
	"attendance/internal/pkg/errs"
)

// ErrJobAlreadyAssigned is returned when another assignment already holds the job slot.
var ErrJobAlreadyAssigned = errors.New("job already assigned")

// JobAlreadyAssignedError names the assignment holding the slot.
type JobAlreadyAssignedError struct {
	JobID        kernel.UUID
	AssignmentID kernel.UUID
}

func (e *JobAlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: job %s is held by assignment %s", ErrJobAlreadyAssigned, e.JobID, e.AssignmentID)
}

func (e *JobAlreadyAssignedError) Unwrap() error {
	return ErrJobAlreadyAssigned
}

// ErrJobNotOpen is returned when the job no longer takes a worker.
var ErrJobNotOpen = errors.New("job is not open")

type JobNotOpenError struct {
	JobID  kernel.UUID
	Status job.Status
}

func (e *JobNotOpenError) Error() string {
	return fmt.Sprintf("%s: job %s is %s", ErrJobNotOpen, e.JobID, e.Status)
}

func (e *JobNotOpenError) Unwrap() error {
	return ErrJobNotOpen
}

// ShiftAssigner accepts an applicant for a job.
//
// Business rules:
//   - the application belongs to the job and the worker
//   - no other Assigned or InProgress assignment exists for the job
//   - the job is Open
//   - the worker has no active commitment overlapping the job window
//
// On success the application is Assigned, the worker holds a commitment for
// the job window and the job is Assigned. On failure nothing is changed.
type ShiftAssigner struct {
	resolver ScheduleConflictResolver
}

func NewShiftAssigner(resolver ScheduleConflictResolver) ShiftAssigner {
	return ShiftAssigner{resolver: resolver}
}

// Assign applies the rules above. jobAssignments are the other assignments
// recorded for j.
func (s ShiftAssigner) Assign(
	j *job.Job,
	w *worker.Worker,
	application *assignment.Assignment,
	jobAssignments []*assignment.Assignment,
	at time.Time,
) error {
	if err := errors.Join(j.Validate(), w.Validate(), application.Validate()); err != nil {
		return err
	}

	if !application.JobID().IsEqual(j.ID()) || !application.WorkerID().IsEqual(w.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("application",
			fmt.Errorf("assignment %s does not link job %s and worker %s", application.ID(), j.ID(), w.ID()))
	}

	for _, other := range jobAssignments {
		if other.ID().IsEqual(application.ID()) {
			continue
		}
		if other.Status().IsActive() {
			return &JobAlreadyAssignedError{JobID: j.ID(), AssignmentID: other.ID()}
		}
	}

	if err := application.EnsureCanTransitionTo(assignment.Assigned); err != nil {
		return err
	}

	if j.Status() != job.Open {
		return &JobNotOpenError{JobID: j.ID(), Status: j.Status()}
	}

	window := j.Schedule().Window()
	if err := s.resolver.EnsureAvailable(w, window); err != nil {
		return err
	}

	if err := w.Commit(j.ID(), window); err != nil {
		return err
	}
	if err := application.Assign(at); err != nil {
		return err
	}
	return j.MarkAssigned()
}
