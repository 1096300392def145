// Package services provides domain services for the attendance core: the
// rules that span a job, a worker and their assignments and so do not belong
// to a single aggregate.
//
// The package includes:
//   - CheckpointVerifier: matches a scanned code against a job's checkpoints
//   - ScheduleConflictResolver: answers whether a worker is free for a window
//   - ShiftAssigner: accepts an applicant for a job with all guards applied
//
// All services are stateless and safe for concurrent use.
package services
