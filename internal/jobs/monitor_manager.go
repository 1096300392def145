package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"

	"go.uber.org/zap"
)

// AssignmentSource reads assignments outside of a transaction.
type AssignmentSource interface {
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)
	ListInProgress(ctx context.Context) ([]*assignment.Assignment, error)
}

var _ ports.TrackingController = (*MonitorManager)(nil)

// MonitorManager owns at most one GeofenceMonitor per assignment.
type MonitorManager struct {
	mu       sync.Mutex
	monitors map[kernel.UUID]*GeofenceMonitor

	assignments AssignmentSource
	locations   ports.LocationProvider
	recorder    LocationRecorder
	publisher   ports.EventPublisher
	cfg         MonitorConfig
	logger      *zap.Logger
}

func NewMonitorManager(
	assignments AssignmentSource,
	locations ports.LocationProvider,
	recorder LocationRecorder,
	publisher ports.EventPublisher,
	cfg MonitorConfig,
	logger *zap.Logger,
) *MonitorManager {
	return &MonitorManager{
		monitors:    make(map[kernel.UUID]*GeofenceMonitor),
		assignments: assignments,
		locations:   locations,
		recorder:    recorder,
		publisher:   publisher,
		cfg:         cfg.withDefaults(),
		logger:      logger,
	}
}

// StartTracking starts a monitor for an InProgress assignment. Starting an
// assignment that is already monitored or no longer InProgress is a no-op.
func (m *MonitorManager) StartTracking(ctx context.Context, assignmentID kernel.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.monitors[assignmentID]; ok {
		return nil
	}

	a, err := m.assignments.Get(ctx, assignmentID)
	if err != nil {
		return fmt.Errorf("loading assignment %s for tracking: %w", assignmentID, err)
	}
	if a.Status() != assignment.InProgress {
		m.logger.Info("assignment not in progress, tracking not started",
			zap.String("assignment_id", assignmentID.String()),
			zap.Stringer("status", a.Status()))
		return nil
	}
	m.startLocked(a)
	return nil
}

func (m *MonitorManager) startLocked(a *assignment.Assignment) *GeofenceMonitor {
	if mon, ok := m.monitors[a.ID()]; ok {
		return mon
	}
	mon := newGeofenceMonitor(a, m.locations, m.recorder, m.publisher, m.cfg, m.logger)
	mon.onEnded = m.forget
	m.monitors[a.ID()] = mon
	mon.Start()
	return mon
}

// forget drops a monitor that ended itself, unless it was already replaced.
func (m *MonitorManager) forget(mon *GeofenceMonitor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.monitors[mon.AssignmentID()]; ok && current == mon {
		delete(m.monitors, mon.AssignmentID())
	}
}

// StopTracking stops the monitor of an assignment and waits for it. Stopping
// an assignment without a monitor is a no-op.
func (m *MonitorManager) StopTracking(ctx context.Context, assignmentID kernel.UUID) error {
	m.mu.Lock()
	mon, ok := m.monitors[assignmentID]
	delete(m.monitors, assignmentID)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return mon.Stop(ctx)
}

// IsTracking reports whether an assignment has a running monitor.
func (m *MonitorManager) IsTracking(assignmentID kernel.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.monitors[assignmentID]
	return ok
}

// ResumeAll starts monitors for every assignment left InProgress, e.g.
// after a restart.
func (m *MonitorManager) ResumeAll(ctx context.Context) error {
	inProgress, err := m.assignments.ListInProgress(ctx)
	if err != nil {
		return fmt.Errorf("listing in-progress assignments: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	resumed := 0
	for _, a := range inProgress {
		if a.Status() != assignment.InProgress {
			continue
		}
		m.startLocked(a)
		resumed++
	}

	m.logger.Info("geofence monitors resumed", zap.Int("count", resumed))
	return nil
}

// StopAll stops every monitor and waits for all of them.
func (m *MonitorManager) StopAll(ctx context.Context) error {
	m.mu.Lock()
	monitors := m.monitors
	m.monitors = make(map[kernel.UUID]*GeofenceMonitor)
	m.mu.Unlock()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, mon := range monitors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := mon.Stop(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	m.logger.Info("geofence monitors stopped", zap.Int("count", len(monitors)))
	return errors.Join(errs...)
}
