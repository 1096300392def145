package services

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
)

// ErrCheckpointMismatch matches every rejected scan.
var ErrCheckpointMismatch = errors.New("checkpoint mismatch")

// CheckpointMismatchError carries the scanned value for diagnostics. It
// never includes the codes registered on the job.
type CheckpointMismatchError struct {
	ScannedCode string
}

func (e *CheckpointMismatchError) Error() string {
	return fmt.Sprintf("%s: scanned code %q matches no checkpoint", ErrCheckpointMismatch, e.ScannedCode)
}

func (e *CheckpointMismatchError) Unwrap() error {
	return ErrCheckpointMismatch
}

// CheckpointMatch identifies the checkpoint a valid scan matched.
type CheckpointMatch struct {
	CheckpointID kernel.UUID
	Name         string
}

// CheckpointVerifier validates scans. It has no state, so repeated calls
// with the same input give the same answer.
type CheckpointVerifier struct{}

func NewCheckpointVerifier() CheckpointVerifier {
	return CheckpointVerifier{}
}

// Verify reports which checkpoint of j has exactly the code scannedCode.
//
// Example:
//
//	match, err := verifier.Verify(j, "XYZ789")
//	if errors.Is(err, services.ErrCheckpointMismatch) {
//	    // ask the worker to scan again
//	}
func (CheckpointVerifier) Verify(j *job.Job, scannedCode string) (CheckpointMatch, error) {
	if err := j.Validate(); err != nil {
		return CheckpointMatch{}, err
	}

	scanned := []byte(scannedCode)
	for _, c := range j.Checkpoints() {
		code := []byte(c.Code())
		if len(code) != len(scanned) {
			continue
		}
		if subtle.ConstantTimeCompare(code, scanned) == 1 {
			return CheckpointMatch{CheckpointID: c.ID(), Name: c.Name()}, nil
		}
	}

	return CheckpointMatch{}, &CheckpointMismatchError{ScannedCode: scannedCode}
}
