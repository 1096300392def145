package events

import (
	"context"
	"errors"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/ports"
)

// FanOut publishes to every publisher, even after one of them fails.
type FanOut []ports.EventPublisher

func (f FanOut) Publish(ctx context.Context, events ...assignment.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
