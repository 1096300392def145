package services_test

import (
	"testing"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"

	"github.com/stretchr/testify/require"
)

var workDay = time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)

func window(t *testing.T, fromHour, toHour int) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(workDay.Add(time.Duration(fromHour)*time.Hour), workDay.Add(time.Duration(toHour)*time.Hour))
	require.NoError(t, err)
	return w
}

func newJob(t *testing.T, start, end string, codes ...string) *job.Job {
	t.Helper()
	site, err := kernel.NewGeoPoint(34.19732, 73.24223)
	require.NoError(t, err)

	startAt, err := kernel.ParseClockTime(start)
	require.NoError(t, err)
	endAt, err := kernel.ParseClockTime(end)
	require.NoError(t, err)
	schedule, err := job.NewSchedule(workDay, startAt, &endAt)
	require.NoError(t, err)

	checkpoints := make([]*job.Checkpoint, 0, len(codes))
	for _, code := range codes {
		c, err := job.NewCheckpoint(kernel.NewUUID(), "gate "+code, code)
		require.NoError(t, err)
		checkpoints = append(checkpoints, c)
	}

	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), "Event steward", site, 0, schedule, 20, checkpoints)
	require.NoError(t, err)
	return j
}

func newWorker(t *testing.T, name string, commitments ...kernel.TimeWindow) *worker.Worker {
	t.Helper()
	w, err := worker.NewWorker(kernel.NewUUID(), name, worker.Contact{})
	require.NoError(t, err)
	for _, c := range commitments {
		require.NoError(t, w.Commit(kernel.NewUUID(), c))
	}
	return w
}

func newApplication(t *testing.T, j *job.Job, w *worker.Worker) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), j.ID(), w.ID(), workDay.Add(-48*time.Hour))
	require.NoError(t, err)
	return a
}
