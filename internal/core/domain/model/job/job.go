package job

import (
	"errors"
	"fmt"
	"math"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job was not created via NewJob or RestoreJob.
var ErrJobIsNotConstructed = errors.New("job must be created via NewJob constructor")

// Job is a posted shift owned by a company.
//
// Invariants:
//   - the site fence has a positive radius (500m unless posted otherwise)
//   - the hourly rate is not negative
//   - at least one checkpoint exists, so a worker can always check in
//   - status only moves forward
type Job struct {
	id          kernel.UUID
	companyID   kernel.UUID
	title       string
	fence       kernel.Geofence
	schedule    Schedule
	hourlyRate  float64
	checkpoints []*Checkpoint
	status      Status

	isConstructed bool
}

// NewJob creates an Open job. A zero radiusMeters selects
// kernel.DefaultGeofenceRadiusMeters.
//
// Example:
//
//	site, _ := kernel.NewGeoPoint(34.19732, 73.24223)
//	start, _ := kernel.ParseClockTime("09:00")
//	end, _ := kernel.ParseClockTime("17:00")
//	schedule, _ := job.NewSchedule(date, start, &end)
//	gate, _ := job.NewCheckpoint(kernel.NewUUID(), "Main gate", "XYZ789")
//	j, err := job.NewJob(kernel.NewUUID(), companyID, "Night guard", site, 0, schedule, 20, []*job.Checkpoint{gate})
func NewJob(
	id, companyID kernel.UUID,
	title string,
	site kernel.GeoPoint,
	radiusMeters float64,
	schedule Schedule,
	hourlyRate float64,
	checkpoints []*Checkpoint,
) (*Job, error) {
	return RestoreJob(id, companyID, title, site, radiusMeters, schedule, hourlyRate, checkpoints, Open)
}

// RestoreJob rebuilds a job read from the directory, in any valid status.
func RestoreJob(
	id, companyID kernel.UUID,
	title string,
	site kernel.GeoPoint,
	radiusMeters float64,
	schedule Schedule,
	hourlyRate float64,
	checkpoints []*Checkpoint,
	status Status,
) (*Job, error) {
	j := &Job{
		title:         title,
		schedule:      schedule,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCompanyID(companyID),
		j.setFence(site, radiusMeters),
		j.setHourlyRate(hourlyRate),
		j.setCheckpoints(checkpoints),
		j.setStatus(status),
		schedule.start.Validate(),
	); err != nil {
		return nil, err
	}

	return j, nil
}

func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

func (j *Job) ID() kernel.UUID {
	return j.id
}

func (j *Job) CompanyID() kernel.UUID {
	return j.companyID
}

func (j *Job) Title() string {
	return j.title
}

func (j *Job) Site() kernel.GeoPoint {
	return j.fence.Center()
}

func (j *Job) Geofence() kernel.Geofence {
	return j.fence
}

func (j *Job) Schedule() Schedule {
	return j.schedule
}

func (j *Job) HourlyRate() float64 {
	return j.hourlyRate
}

func (j *Job) Status() Status {
	return j.status
}

// Checkpoints returns the registered checkpoints in posting order.
func (j *Job) Checkpoints() []*Checkpoint {
	out := make([]*Checkpoint, len(j.checkpoints))
	copy(out, j.checkpoints)
	return out
}

// IsOwnedBy reports whether companyID posted the job.
func (j *Job) IsOwnedBy(companyID kernel.UUID) bool {
	return j.companyID.IsEqual(companyID)
}

// Price returns hours × hourly rate rounded to cents.
func (j *Job) Price(hours float64) float64 {
	return math.Round(hours*j.hourlyRate*100) / 100
}

// MarkAssigned moves an Open job to Assigned.
func (j *Job) MarkAssigned() error {
	return j.moveTo(Open, Assigned)
}

// MarkInProgress moves an Assigned job to InProgress.
func (j *Job) MarkInProgress() error {
	return j.moveTo(Assigned, InProgress)
}

// MarkCompleted closes an InProgress job. Book-off closes the job the same way.
func (j *Job) MarkCompleted() error {
	return j.moveTo(InProgress, Completed)
}

func (j *Job) moveTo(from, next Status) error {
	newStatus, err := j.status.transition(from, next)
	if err != nil {
		return err
	}
	j.status = newStatus
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company id", err)
	}
	j.companyID = id
	return nil
}

func (j *Job) setFence(site kernel.GeoPoint, radiusMeters float64) error {
	if radiusMeters == 0 {
		radiusMeters = kernel.DefaultGeofenceRadiusMeters
	}
	fence, err := kernel.NewGeofence(site, radiusMeters)
	if err != nil {
		return err
	}
	j.fence = fence
	return nil
}

func (j *Job) setHourlyRate(rate float64) error {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return errs.NewValueIsInvalidErrorWithCause("hourly rate is invalid", fmt.Errorf("%v is negative or not finite", rate))
	}
	j.hourlyRate = rate
	return nil
}

func (j *Job) setCheckpoints(checkpoints []*Checkpoint) error {
	if len(checkpoints) == 0 {
		return errs.NewValueIsRequiredError("checkpoints")
	}
	for i, c := range checkpoints {
		if c == nil {
			return errs.NewValueIsRequiredError(fmt.Sprintf("checkpoint %d", i))
		}
	}
	j.checkpoints = make([]*Checkpoint, len(checkpoints))
	copy(j.checkpoints, checkpoints)
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}
