package events_test

import (
	"testing"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var checkInAt = time.Date(2025, 7, 26, 9, 0, 0, 0, time.UTC)

// trackedShift returns an InProgress assignment and the StatusChanged
// events of getting there.
func trackedShift(t *testing.T) (*assignment.Assignment, []assignment.DomainEvent) {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), checkInAt.Add(-48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, a.Assign(checkInAt.Add(-24*time.Hour)))
	require.NoError(t, a.CheckIn(kernel.NewUUID(), checkInAt))
	return a, a.PullEvents()
}

func breach(t *testing.T, a *assignment.Assignment) assignment.DomainEvent {
	t.Helper()
	site, err := kernel.NewGeoPoint(34.19732, 73.24223)
	require.NoError(t, err)
	fence, err := kernel.NewGeofence(site, 500)
	require.NoError(t, err)
	away, err := kernel.NewGeoPoint(34.20732, 73.24223)
	require.NoError(t, err)

	_, err = a.RecordLocation(fence, away, checkInAt.Add(time.Hour), assignment.DefaultHistoryLimit)
	require.NoError(t, err)
	events := a.PullEvents()
	require.Len(t, events, 1)
	return events[0]
}
