// Package worker models a job seeker as the scheduling core sees them:
// contact attributes for search, and the commitments that block their calendar.
//
// A commitment is added when the worker is assigned to a job and released
// (kept, with a release timestamp) when that assignment ends. Only active
// commitments take part in conflict checks.
package worker
