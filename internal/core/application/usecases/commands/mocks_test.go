package commands_test

import (
	"context"
	"testing"
	"time"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"
	"attendance/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) FindByJobAndWorker(ctx context.Context, jobID, workerID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, jobID, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByJob(ctx context.Context, jobID kernel.UUID) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListInProgress(ctx context.Context) ([]*assignment.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) SaveCommitments(ctx context.Context, w *worker.Worker) error {
	return m.Called(ctx, w).Error(0)
}

type MockUoW struct {
	mock.Mock
	assignments *MockAssignmentRepository
	jobs        *MockJobRepository
	workers     *MockWorkerRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		assignments: new(MockAssignmentRepository),
		jobs:        new(MockJobRepository),
		workers:     new(MockWorkerRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	return m.assignments
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	return m.jobs
}

func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	return m.workers
}

func (m *MockUoW) assertAll(t *testing.T) {
	t.Helper()
	m.AssertExpectations(t)
	m.assignments.AssertExpectations(t)
	m.jobs.AssertExpectations(t)
	m.workers.AssertExpectations(t)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	return m.Called().Get(0).(commands.TrackingUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...assignment.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

type MockTracking struct{ mock.Mock }

func (m *MockTracking) StartTracking(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTracking) StopTracking(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockInvoiceService struct{ mock.Mock }

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req ports.InvoiceRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockRotaStore struct{ mock.Mock }

func (m *MockRotaStore) AddMember(ctx context.Context, companyID, workerID kernel.UUID) (ports.RotaOutcome, error) {
	args := m.Called(ctx, companyID, workerID)
	return args.Get(0).(ports.RotaOutcome), args.Error(1)
}

type MockLocationSink struct{ mock.Mock }

func (m *MockLocationSink) ReportLocation(ctx context.Context, workerID kernel.UUID, fix ports.LocationFix) error {
	return m.Called(ctx, workerID, fix).Error(0)
}

// fixtures

var fixtureDay = time.Date(2025, 7, 26, 0, 0, 0, 0, time.UTC)

func fixtureJob(t *testing.T, status job.Status, code string) *job.Job {
	t.Helper()
	site, err := kernel.NewGeoPoint(34.19732, 73.24223)
	require.NoError(t, err)
	start, err := kernel.ParseClockTime("09:00")
	require.NoError(t, err)
	end, err := kernel.ParseClockTime("17:00")
	require.NoError(t, err)
	schedule, err := job.NewSchedule(fixtureDay, start, &end)
	require.NoError(t, err)
	gate, err := job.NewCheckpoint(kernel.NewUUID(), "Main gate", code)
	require.NoError(t, err)

	j, err := job.RestoreJob(kernel.NewUUID(), kernel.NewUUID(), "Warehouse shift", site, 500, schedule, 20, []*job.Checkpoint{gate}, status)
	require.NoError(t, err)
	return j
}

func fixtureWorker(t *testing.T, commitments ...*worker.Commitment) *worker.Worker {
	t.Helper()
	w, err := worker.RestoreWorker(kernel.NewUUID(), "Imran", worker.Contact{City: "Mansehra"}, commitments)
	require.NoError(t, err)
	return w
}

// fixtureAssignment walks a new application up to status.
func fixtureAssignment(t *testing.T, j *job.Job, w *worker.Worker, status assignment.Status) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), j.ID(), w.ID(), fixtureDay.Add(-48*time.Hour))
	require.NoError(t, err)

	steps := []func() error{
		func() error { return a.Assign(fixtureDay.Add(-24 * time.Hour)) },
		func() error { return a.CheckIn(j.Checkpoints()[0].ID(), fixtureDay.Add(9*time.Hour)) },
	}
	for i := 0; i < len(steps) && a.Status() < status; i++ {
		require.NoError(t, steps[i]())
	}
	switch status {
	case assignment.Completed:
		require.NoError(t, a.Complete("INV-0", fixtureDay.Add(17*time.Hour)))
	case assignment.BookedOff:
		require.NoError(t, a.BookOff(fixtureDay.Add(17*time.Hour)))
	default:
	}
	require.Equal(t, status, a.Status())
	a.PullEvents()
	return a
}

func committedTo(t *testing.T, j *job.Job) *worker.Commitment {
	t.Helper()
	c, err := worker.NewCommitment(j.ID(), j.Schedule().Window())
	require.NoError(t, err)
	return c
}
