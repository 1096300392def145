package events

import (
	"context"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/ports"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ ports.EventPublisher = LogPublisher{}

// LogPublisher writes every event to the log. Breaches and degraded
// tracking are warnings.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) LogPublisher {
	return LogPublisher{logger: logger.With(zap.String("component", "events"))}
}

func (p LogPublisher) Publish(_ context.Context, events ...assignment.DomainEvent) error {
	for _, e := range events {
		msg := NewMessage(e)

		level := zapcore.InfoLevel
		if msg.Type == assignment.EventGeofenceBreached || msg.Type == assignment.EventTrackingDegraded {
			level = zapcore.WarnLevel
		}

		fields := []zap.Field{
			zap.String("event", msg.Type),
			zap.String("assignment_id", msg.AssignmentID),
			zap.String("worker_id", msg.WorkerID),
			zap.Time("occurred_at", msg.OccurredAt),
		}
		switch {
		case msg.Sample != nil:
			fields = append(fields, zap.Float64("distance_meters", msg.Sample.DistanceMeters))
		case msg.ConsecutiveMisses > 0:
			fields = append(fields, zap.Int("consecutive_misses", msg.ConsecutiveMisses))
		case msg.To != "":
			fields = append(fields, zap.String("from", msg.From), zap.String("to", msg.To))
		}

		p.logger.Log(level, "assignment event", fields...)
	}
	return nil
}
