package jobs

import (
	"context"
	"testing"
	"time"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocationProvider struct{ mock.Mock }

func (m *MockLocationProvider) CurrentLocation(ctx context.Context, workerID kernel.UUID) (ports.LocationFix, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).(ports.LocationFix), args.Error(1)
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) Handle(ctx context.Context, cmd commands.RecordLocationSampleCommand) (assignment.LocationSample, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(assignment.LocationSample), args.Error(1)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...assignment.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

type MockAssignmentSource struct{ mock.Mock }

func (m *MockAssignmentSource) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentSource) ListInProgress(ctx context.Context) ([]*assignment.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

var shiftStart = time.Date(2025, 7, 26, 9, 0, 0, 0, time.UTC)

func inProgressShift(t *testing.T) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), shiftStart.Add(-48*time.Hour))
	require.NoError(t, err)
	require.NoError(t, a.Assign(shiftStart.Add(-24*time.Hour)))
	require.NoError(t, a.CheckIn(kernel.NewUUID(), shiftStart))
	a.PullEvents()
	return a
}

func degradedEvent(misses int) any {
	return mock.MatchedBy(func(events []assignment.DomainEvent) bool {
		if len(events) != 1 {
			return false
		}
		e, ok := events[0].(assignment.TrackingDegraded)
		return ok && e.ConsecutiveMisses == misses
	})
}
