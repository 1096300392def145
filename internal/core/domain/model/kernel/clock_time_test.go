package kernel_test

import (
	"testing"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	c, err := kernel.ParseClockTime("09:30")

	require.NoError(t, err)
	assert.Equal(t, 9, c.Hour())
	assert.Equal(t, 30, c.Minute())
	assert.Equal(t, 570, c.MinutesSinceMidnight())
	assert.Equal(t, "09:30", c.String())

	for _, bad := range []string{"", "9", "24:00", "12:60", "noon", "09:00:00"} {
		_, err = kernel.ParseClockTime(bad)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestNewClockTime(t *testing.T) {
	_, err := kernel.NewClockTime(24, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = kernel.NewClockTime(10, -1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	start, err := kernel.NewClockTime(9, 0)
	require.NoError(t, err)
	end, err := kernel.NewClockTime(17, 0)
	require.NoError(t, err)
	assert.True(t, start.IsBefore(end))
	assert.False(t, end.IsBefore(start))
}

func TestClockTimeFromMinutes(t *testing.T) {
	c, err := kernel.ClockTimeFromMinutes(17 * 60)
	require.NoError(t, err)
	assert.Equal(t, "17:00", c.String())

	_, err = kernel.ClockTimeFromMinutes(24 * 60)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestClockTime_On(t *testing.T) {
	c, err := kernel.NewClockTime(17, 45)
	require.NoError(t, err)

	got := c.On(time.Date(2025, 7, 26, 3, 12, 9, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 7, 26, 17, 45, 0, 0, time.UTC), got)
}

func TestClockTime_Validate(t *testing.T) {
	var c kernel.ClockTime

	assert.ErrorIs(t, c.Validate(), kernel.ErrClockTimeIsNotConstructed)
}
