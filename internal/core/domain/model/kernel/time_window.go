package kernel

import (
	"errors"
	"fmt"
	"time"

	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when a TimeWindow was not built by a constructor.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError("time window must be created via NewTimeWindow")

// TimeWindow is the half-open interval [start, end). It describes both a
// worker's committed shift and the candidate window of an availability search.
//
// Windows that only share an endpoint do not overlap: a 09:00-17:00 shift and
// a 17:00-20:00 shift on the same day can be held by the same worker.
//
// Example:
//
//	day := time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)
//	morning, _ := kernel.NewTimeWindow(day.Add(9*time.Hour), day.Add(17*time.Hour))
//	evening, _ := kernel.NewTimeWindow(day.Add(17*time.Hour), day.Add(20*time.Hour))
//	morning.Overlaps(evening) // false
type TimeWindow struct {
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow requires both bounds and end strictly after start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	var validationErrs []error
	if start.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("start"))
	}
	if end.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("end"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return TimeWindow{}, err
	}

	if !end.After(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}

	return TimeWindow{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

// NewDayWindow covers the whole calendar day of date: [00:00, next day 00:00).
func NewDayWindow(date time.Time) TimeWindow {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return TimeWindow{start: start, end: start.AddDate(0, 0, 1), guard: guard.NewConstructorGuard()}
}

func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps is symmetric: a.Overlaps(b) == b.Overlaps(a).
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// Contains reports whether t falls inside [start, end).
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
