package job

import (
	"errors"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
)

// Schedule is the declared date and clock times of a shift.
type Schedule struct {
	workDate time.Time
	start    kernel.ClockTime
	end      *kernel.ClockTime
}

// NewSchedule normalizes workDate to midnight in its own location. end may
// be nil when the company did not post one.
func NewSchedule(workDate time.Time, start kernel.ClockTime, end *kernel.ClockTime) (Schedule, error) {
	var validationErrs []error
	if workDate.IsZero() {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("work date"))
	}
	if err := start.Validate(); err != nil {
		validationErrs = append(validationErrs, err)
	}
	if end != nil {
		if err := end.Validate(); err != nil {
			validationErrs = append(validationErrs, err)
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Schedule{}, err
	}

	y, m, d := workDate.Date()
	return Schedule{
		workDate: time.Date(y, m, d, 0, 0, 0, 0, workDate.Location()),
		start:    start,
		end:      end,
	}, nil
}

func (s Schedule) WorkDate() time.Time {
	return s.workDate
}

func (s Schedule) Start() kernel.ClockTime {
	return s.start
}

// End is nil for open-ended shifts.
func (s Schedule) End() *kernel.ClockTime {
	return s.end
}

// Window is the interval the shift blocks in a worker's calendar.
func (s Schedule) Window() kernel.TimeWindow {
	if s.end == nil {
		return kernel.NewDayWindow(s.workDate)
	}
	return s.shiftWindow()
}

// ScheduledHours is the billable duration derived from the declared times,
// not from check-in or completion timestamps.
func (s Schedule) ScheduledHours() float64 {
	return s.shiftWindow().Duration().Hours()
}

func (s Schedule) shiftWindow() kernel.TimeWindow {
	start := s.start.On(s.workDate)

	var end time.Time
	switch {
	case s.end == nil:
		end = s.workDate.AddDate(0, 0, 1)
	case s.end.IsBefore(s.start) || s.end.MinutesSinceMidnight() == s.start.MinutesSinceMidnight():
		end = s.end.On(s.workDate.AddDate(0, 0, 1))
	default:
		end = s.end.On(s.workDate)
	}

	// start < end holds by construction of every case above
	w, _ := kernel.NewTimeWindow(start, end)
	return w
}
