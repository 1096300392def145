package assignment

import (
	"errors"
	"fmt"

	"attendance/internal/pkg/errs"
)

// ErrInvalidTransition matches every rejected status change.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError names the status an assignment was in and the one
// it was asked to move to.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status is the lifecycle state of an assignment.
type Status int

const (
	Unknown Status = iota

	// Applied is the initial state, created when a worker applies.
	Applied

	// Assigned means the company selected the worker; the job slot is reserved.
	Assigned

	// InProgress starts with a valid checkpoint scan and enables tracking.
	InProgress

	// Completed ends the shift with an invoice request.
	Completed

	// BookedOff ends the shift on the company side without an invoice.
	BookedOff
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Applied:    "applied",
		Assigned:   "assigned",
		InProgress: "inProgress",
		Completed:  "completed",
		BookedOff:  "bookedOff",
	}
}

// nextStatuses is the whole transition graph.
func nextStatuses() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no successors
	return map[Status][]Status{
		Applied:    {Assigned},
		Assigned:   {InProgress},
		InProgress: {Completed, BookedOff},
	}
}

// ParseStatus maps the persisted or wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not an assignment status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > BookedOff {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports Completed and BookedOff.
func (s Status) IsTerminal() bool {
	return s == Completed || s == BookedOff
}

// IsActive reports whether the assignment holds the job slot: Assigned or InProgress.
func (s Status) IsActive() bool {
	return s == Assigned || s == InProgress
}

// CanTransitionTo reports whether next directly follows s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range nextStatuses()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next, or an *InvalidTransitionError when the graph
// does not allow it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}
