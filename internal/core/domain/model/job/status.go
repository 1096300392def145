package job

import (
	"fmt"

	"attendance/internal/pkg/errs"
)

// Status is the lifecycle state of a job.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Open jobs accept applications.
	Open

	// Assigned jobs have a selected worker who has not checked in yet.
	Assigned

	// InProgress jobs have a worker on site.
	InProgress

	// Completed is final. Jobs are archived, never deleted.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Open:       "open",
		Assigned:   "assigned",
		InProgress: "inProgress",
		Completed:  "completed",
	}
}

// ParseStatus maps the persisted or wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a job status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
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

// transition moves s to next when s equals from.
func (s Status) transition(from, next Status) (Status, error) {
	if s != from {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to become %s", s, next),
		)
	}
	return next, nil
}
