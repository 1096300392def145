package commands

import (
	"context"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/ports"

	"go.uber.org/zap"
)

// publishCommitted hands events of a committed change to the publisher.
// Delivery failures are logged; the change stays committed.
func publishCommitted(ctx context.Context, publisher ports.EventPublisher, logger *zap.Logger, events []assignment.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Warn("failed to publish assignment events", zap.Int("events", len(events)), zap.Error(err))
	}
}
