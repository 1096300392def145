// Package assignment contains the Assignment aggregate: one worker attached
// to one job for one shift, with its lifecycle and its location trail.
//
// State machine:
//
//	Applied ──> Assigned ──> InProgress ──┬──> Completed
//	                                      └──> BookedOff
//
// Every other move fails with an *InvalidTransitionError (matching
// ErrInvalidTransition) and leaves the aggregate untouched. Completed and
// BookedOff are terminal.
//
// While InProgress the aggregate accepts location samples. Each sample is
// measured against the job geofence and appended to a bounded history; the
// oldest samples are evicted first. Crossing from inside to outside records a
// GeofenceBreached event; staying outside does not record another one until
// the worker has come back inside.
//
// Recorded events are collected on the aggregate and drained by the
// application layer after the unit of work commits:
//
//	if err := a.RecordLocation(fence, point, now, limit); err != nil { ... }
//	...
//	publisher.Publish(ctx, a.PullEvents()...)
package assignment
