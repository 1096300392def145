package kernel

import (
	"fmt"
	"time"

	"attendance/internal/pkg/errs"
	"attendance/internal/pkg/guard"
)

const minutesPerDay = 24 * 60

// ErrClockTimeIsNotConstructed is returned when a ClockTime was not built by a constructor.
var ErrClockTimeIsNotConstructed = errs.NewValueIsRequiredError("clock time must be created via NewClockTime or ParseClockTime")

// ClockTime is a wall-clock time of day with minute precision, as posted on a
// job: "09:00" start, "17:00" end.
type ClockTime struct {
	minutes int
	guard   guard.ConstructorGuard
}

// NewClockTime builds a time of day from hour 0..23 and minute 0..59.
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return ClockTime{minutes: hour*60 + minute, guard: guard.NewConstructorGuard()}, nil
}

// ParseClockTime parses "HH:MM" (24h). Seconds are not accepted.
func ParseClockTime(s string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, errs.NewValueIsInvalidErrorWithCause("clock time", err)
	}
	return NewClockTime(parsed.Hour(), parsed.Minute())
}

func (c ClockTime) Validate() error {
	if err := c.guard.Validate(ErrClockTimeIsNotConstructed); err != nil {
		return err
	}
	if c.minutes < 0 || c.minutes >= minutesPerDay {
		return errs.NewValueIsOutOfRangeError("clock time minutes", c.minutes, 0, minutesPerDay-1)
	}
	return nil
}

func (c ClockTime) Hour() int {
	return c.minutes / 60
}

func (c ClockTime) Minute() int {
	return c.minutes % 60
}

// MinutesSinceMidnight is the persisted form.
func (c ClockTime) MinutesSinceMidnight() int {
	return c.minutes
}

// ClockTimeFromMinutes restores a persisted MinutesSinceMidnight value.
func ClockTimeFromMinutes(minutes int) (ClockTime, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return ClockTime{}, errs.NewValueIsOutOfRangeError("clock time minutes", minutes, 0, minutesPerDay-1)
	}
	return ClockTime{minutes: minutes, guard: guard.NewConstructorGuard()}, nil
}

// IsBefore reports whether c is strictly earlier in the day than other.
func (c ClockTime) IsBefore(other ClockTime) bool {
	return c.minutes < other.minutes
}

// On places the clock time on the calendar day of date, in date's location.
func (c ClockTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location())
}

// String returns the "HH:MM" form.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
