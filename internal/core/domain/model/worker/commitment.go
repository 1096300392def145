package worker

import (
	"errors"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
)

// Commitment reserves a window of the worker's time for one job.
type Commitment struct {
	jobID      kernel.UUID
	window     kernel.TimeWindow
	releasedAt *time.Time
}

// NewCommitment creates an active commitment.
func NewCommitment(jobID kernel.UUID, window kernel.TimeWindow) (*Commitment, error) {
	return RestoreCommitment(jobID, window, nil)
}

// RestoreCommitment rebuilds a persisted commitment, released or not.
func RestoreCommitment(jobID kernel.UUID, window kernel.TimeWindow, releasedAt *time.Time) (*Commitment, error) {
	if err := errors.Join(jobID.Validate(), window.Validate()); err != nil {
		return nil, err
	}
	if releasedAt != nil && releasedAt.IsZero() {
		return nil, errs.NewValueIsInvalidError("released at")
	}
	return &Commitment{jobID: jobID, window: window, releasedAt: releasedAt}, nil
}

func (c *Commitment) JobID() kernel.UUID {
	return c.jobID
}

func (c *Commitment) Window() kernel.TimeWindow {
	return c.window
}

// ReleasedAt is nil while the commitment is active.
func (c *Commitment) ReleasedAt() *time.Time {
	if c.releasedAt == nil {
		return nil
	}
	at := *c.releasedAt
	return &at
}

func (c *Commitment) IsActive() bool {
	return c.releasedAt == nil
}
