// Package job models a posted shift: where it happens, when, for how much,
// and which checkpoint codes prove that a worker is on site.
//
// Jobs are read from the job directory; this core only moves their status
// forward as the assignment attached to them progresses:
//
//	Open ──> Assigned ──> InProgress ──> Completed
//
// Conflict checks and invoicing read the schedule through Schedule.Window and
// Schedule.ScheduledHours:
//   - no end time: the job occupies the whole calendar day for conflicts and
//     is billed from the start time until midnight
//   - end time not after start time: the shift crosses midnight and ends on
//     the next day
package job
