package job_test

import (
	"testing"
	"time"

	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var workDate = time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)

func clock(t *testing.T, s string) kernel.ClockTime {
	t.Helper()
	c, err := kernel.ParseClockTime(s)
	require.NoError(t, err)
	return c
}

func nineToFive(t *testing.T) job.Schedule {
	t.Helper()
	end := clock(t, "17:00")
	s, err := job.NewSchedule(workDate, clock(t, "09:00"), &end)
	require.NoError(t, err)
	return s
}

func newJob(t *testing.T, radius float64) *job.Job {
	t.Helper()
	site, err := kernel.NewGeoPoint(34.19732, 73.24223)
	require.NoError(t, err)
	gate, err := job.NewCheckpoint(kernel.NewUUID(), "Main gate", "XYZ789")
	require.NoError(t, err)

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Warehouse shift", site, radius, nineToFive(t), 20, []*job.Checkpoint{gate})
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("defaults radius to 500m", func(t *testing.T) {
		j := newJob(t, 0)

		assert.Equal(t, job.Open, j.Status())
		assert.Equal(t, kernel.DefaultGeofenceRadiusMeters, j.Geofence().RadiusMeters())
		assert.Len(t, j.Checkpoints(), 1)
		assert.NoError(t, j.Validate())
	})

	t.Run("keeps posted radius", func(t *testing.T) {
		assert.Equal(t, 150.0, newJob(t, 150).Geofence().RadiusMeters())
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		_, err := job.NewJob(kernel.UUID{}, kernel.UUID{}, "", kernel.GeoPoint{}, -5, nineToFive(t), -1, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorContains(t, err, "company id")
		assert.ErrorContains(t, err, "hourly rate is invalid")
		assert.ErrorContains(t, err, "checkpoints")
		assert.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})

	t.Run("rejects unconstructed schedule", func(t *testing.T) {
		site, _ := kernel.NewGeoPoint(1, 1)
		gate, _ := job.NewCheckpoint(kernel.NewUUID(), "gate", "A")

		_, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "t", site, 0, job.Schedule{}, 1, []*job.Checkpoint{gate})

		assert.ErrorIs(t, err, kernel.ErrClockTimeIsNotConstructed)
	})
}

func TestJob_Lifecycle(t *testing.T) {
	j := newJob(t, 0)

	require.ErrorIs(t, j.MarkInProgress(), errs.ErrValueIsInvalid)
	assert.Equal(t, job.Open, j.Status())

	require.NoError(t, j.MarkAssigned())
	require.NoError(t, j.MarkInProgress())
	require.NoError(t, j.MarkCompleted())
	assert.Equal(t, job.Completed, j.Status())

	assert.Error(t, j.MarkAssigned())
	assert.Equal(t, job.Completed, j.Status())
}

func TestJob_IsOwnedBy(t *testing.T) {
	j := newJob(t, 0)

	assert.True(t, j.IsOwnedBy(j.CompanyID()))
	assert.False(t, j.IsOwnedBy(kernel.NewUUID()))
}

func TestJob_Price(t *testing.T) {
	j := newJob(t, 0)

	assert.Equal(t, 160.0, j.Price(j.Schedule().ScheduledHours()))
	assert.Equal(t, 30.67, j.Price(1.5333))
}

func TestJob_CheckpointsIsACopy(t *testing.T) {
	j := newJob(t, 0)

	cps := j.Checkpoints()
	cps[0] = nil

	assert.NotNil(t, j.Checkpoints()[0])
}

func TestRestoreJob(t *testing.T) {
	site, _ := kernel.NewGeoPoint(1, 1)
	gate, _ := job.NewCheckpoint(kernel.NewUUID(), "gate", "A")

	j, err := job.RestoreJob(kernel.NewUUID(), kernel.NewUUID(), "t", site, 100, nineToFive(t), 10, []*job.Checkpoint{gate}, job.InProgress)
	require.NoError(t, err)
	assert.Equal(t, job.InProgress, j.Status())

	_, err = job.RestoreJob(kernel.NewUUID(), kernel.NewUUID(), "t", site, 100, nineToFive(t), 10, []*job.Checkpoint{gate}, job.Status(42))
	assert.ErrorContains(t, err, "status is invalid")
}

func TestNewCheckpoint(t *testing.T) {
	c, err := job.NewCheckpoint(kernel.NewUUID(), "Back door", " XYZ789 ")
	require.NoError(t, err)
	assert.Equal(t, " XYZ789 ", c.Code())
	assert.Equal(t, "Back door", c.Name())

	_, err = job.NewCheckpoint(kernel.NewUUID(), " ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorContains(t, err, "checkpoint name")
	assert.ErrorContains(t, err, "checkpoint code")
}
