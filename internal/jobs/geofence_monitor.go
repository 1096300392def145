package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval  = 10 * time.Second
	DefaultMissThreshold = 6
)

// MonitorConfig tunes every geofence monitor.
type MonitorConfig struct {
	// PollInterval is rounded down to whole seconds, with a one second minimum.
	PollInterval time.Duration
	// MissThreshold is the number of consecutive failed polls that makes
	// tracking degraded.
	MissThreshold int
}

func (c MonitorConfig) withDefaults() MonitorConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.MissThreshold <= 0 {
		c.MissThreshold = DefaultMissThreshold
	}
	return c
}

// LocationRecorder stores one location sample; it is implemented by
// commands.RecordLocationSampleCommandHandler.
type LocationRecorder interface {
	Handle(ctx context.Context, cmd commands.RecordLocationSampleCommand) (assignment.LocationSample, error)
}

// GeofenceMonitor polls the location of the worker of one InProgress assignment.
type GeofenceMonitor struct {
	shift     *assignment.Assignment
	locations ports.LocationProvider
	recorder  LocationRecorder
	publisher ports.EventPublisher
	cfg       MonitorConfig
	logger    *zap.Logger
	now       func() time.Time

	cron     *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
	stopped  atomic.Bool
	haltOnce sync.Once
	halted   context.Context

	// onEnded is called once when the monitor ends itself
	onEnded func(*GeofenceMonitor)

	// touched only by ticks, which never overlap
	misses       int
	notBefore    time.Time
	lastRecorded time.Time
}

func newGeofenceMonitor(
	shift *assignment.Assignment,
	locations ports.LocationProvider,
	recorder LocationRecorder,
	publisher ports.EventPublisher,
	cfg MonitorConfig,
	logger *zap.Logger,
) *GeofenceMonitor {
	cfg = cfg.withDefaults()
	logger = logger.With(
		zap.String("component", "geofence-monitor"),
		zap.String("assignment_id", shift.ID().String()),
		zap.String("worker_id", shift.WorkerID().String()),
	)
	cronLog := newCronLogger(logger)

	var notBefore, lastRecorded time.Time
	if at := shift.CheckedInAt(); at != nil {
		notBefore = *at
	}
	if history := shift.History(); len(history) > 0 {
		lastRecorded = history[len(history)-1].RecordedAt()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &GeofenceMonitor{
		shift:        shift,
		locations:    locations,
		recorder:     recorder,
		publisher:    publisher,
		cfg:          cfg,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
		cron:         cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.SkipIfStillRunning(cronLog))),
		ctx:          ctx,
		cancel:       cancel,
		notBefore:    notBefore,
		lastRecorded: lastRecorded,
	}
}

// AssignmentID identifies the monitored shift.
func (m *GeofenceMonitor) AssignmentID() kernel.UUID {
	return m.shift.ID()
}

// Start schedules the polls. The first poll runs one interval after Start.
func (m *GeofenceMonitor) Start() {
	m.cron.Schedule(cron.Every(m.cfg.PollInterval), cron.FuncJob(m.tick))
	m.cron.Start()
	m.logger.Info("geofence monitor started", zap.Duration("interval", m.cfg.PollInterval))
}

// Stop cancels a poll in flight, prevents new ones and waits until the
// running tick returns or ctx is done.
func (m *GeofenceMonitor) Stop(ctx context.Context) error {
	select {
	case <-m.halt().Done():
		m.logger.Info("geofence monitor stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for geofence monitor of %s: %w", m.shift.ID(), ctx.Err())
	}
}

// halt stops scheduling without waiting. The returned context is done once
// the running tick has returned.
func (m *GeofenceMonitor) halt() context.Context {
	m.haltOnce.Do(func() {
		m.stopped.Store(true)
		m.cancel()
		m.halted = m.cron.Stop()
	})
	return m.halted
}

// end is called from a tick once the assignment has left InProgress.
func (m *GeofenceMonitor) end() {
	if m.stopped.Load() {
		return
	}
	m.halt()
	m.logger.Info("assignment no longer in progress, geofence monitor ended")
	if m.onEnded != nil {
		m.onEnded(m)
	}
}

func (m *GeofenceMonitor) tick() {
	if m.stopped.Load() {
		return
	}
	ctx := m.ctx

	fix, err := m.locations.CurrentLocation(ctx, m.shift.WorkerID())
	if m.stopped.Load() {
		return
	}
	if err != nil {
		m.miss(ctx, err)
		return
	}

	recordedAt := fix.ReportedAt
	if recordedAt.IsZero() {
		recordedAt = m.now()
	}
	if recordedAt.Before(m.notBefore) || (!m.lastRecorded.IsZero() && !recordedAt.After(m.lastRecorded)) {
		m.logger.Debug("no fresh location for worker", zap.Time("reported_at", recordedAt))
		return
	}

	cmd, err := commands.NewRecordLocationSampleCommand(m.shift.ID(), fix.Point, recordedAt)
	if err != nil {
		m.miss(ctx, err)
		return
	}

	sample, err := m.recorder.Handle(ctx, cmd)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrNotTracking):
			m.end()
		case m.stopped.Load():
			m.logger.Debug("location sample discarded", zap.Error(err))
		default:
			m.miss(ctx, err)
		}
		return
	}

	m.lastRecorded = recordedAt
	if m.misses >= m.cfg.MissThreshold {
		m.logger.Info("location tracking recovered", zap.Int("missed_polls", m.misses))
	}
	m.misses = 0

	m.logger.Debug("location sample recorded",
		zap.Int64("sequence", sample.Sequence()),
		zap.Float64("distance_meters", sample.DistanceMeters()),
		zap.Bool("outside", sample.OutsideGeofence()),
	)
}

func (m *GeofenceMonitor) miss(ctx context.Context, err error) {
	m.misses++

	if errors.Is(err, ports.ErrLocationUnavailable) {
		m.logger.Debug("no location for worker", zap.Int("consecutive_misses", m.misses))
	} else {
		m.logger.Warn("location poll failed", zap.Int("consecutive_misses", m.misses), zap.Error(err))
	}

	if m.misses != m.cfg.MissThreshold {
		return
	}

	m.logger.Warn("location tracking degraded", zap.Int("consecutive_misses", m.misses))
	event := assignment.NewTrackingDegraded(m.shift, m.misses, m.now())
	if pubErr := m.publisher.Publish(ctx, event); pubErr != nil {
		m.logger.Warn("failed to publish tracking degraded", zap.Error(pubErr))
	}
}
