package job

import (
	"errors"
	"strings"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
)

// Checkpoint is a scannable code placed on a job site. It is immutable once
// the job is posted.
type Checkpoint struct {
	id   kernel.UUID
	name string
	code string
}

// NewCheckpoint requires a name and a non-blank code. The code is kept as
// given: scans are matched exactly, surrounding whitespace included.
func NewCheckpoint(id kernel.UUID, name, code string) (*Checkpoint, error) {
	var validationErrs []error
	if err := id.Validate(); err != nil {
		validationErrs = append(validationErrs, err)
	}
	if strings.TrimSpace(name) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("checkpoint name"))
	}
	if strings.TrimSpace(code) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("checkpoint code"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return &Checkpoint{id: id, name: name, code: code}, nil
}

func (c *Checkpoint) ID() kernel.UUID {
	return c.id
}

func (c *Checkpoint) Name() string {
	return c.name
}

// Code returns the secret payload of the checkpoint. Do not expose it in
// responses or logs.
func (c *Checkpoint) Code() string {
	return c.code
}
