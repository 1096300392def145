// Package jobs runs the background work of the attendance engine: one
// geofence monitor per shift that is in progress.
//
// # Geofence monitoring
//
// A GeofenceMonitor polls the worker's position on a fixed interval using a
// private github.com/robfig/cron/v3 scheduler wrapped in SkipIfStillRunning,
// so a slow poll delays the next one instead of overlapping it. Each
// position goes through commands.RecordLocationSampleCommandHandler, which
// measures it against the job's geofence, stores it and publishes a breach
// event when the worker leaves the fence.
//
// Failed polls are logged and skipped. After MissThreshold consecutive
// misses the monitor publishes assignment.TrackingDegraded once; the next
// successful poll resets the count.
//
// # Lifecycle
//
// MonitorManager implements ports.TrackingController:
//
//	manager := jobs.NewMonitorManager(assignments, locations, recorder, publisher, cfg, logger)
//	if err := manager.ResumeAll(ctx); err != nil {
//	    logger.Warn("some monitors did not resume", zap.Error(err))
//	}
//	defer manager.StopAll(ctx)
//
// StopTracking waits for a poll in flight. A poll that returns after Stop
// is discarded.
package jobs
