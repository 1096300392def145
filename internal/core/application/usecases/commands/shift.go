package commands

import (
	"context"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"
)

// lockedShift is an assignment with its job and worker, all row-locked.
type lockedShift struct {
	assignment *assignment.Assignment
	job        *job.Job
	worker     *worker.Worker
}

// lockShift locks job, worker and assignment in that order.
func lockShift(ctx context.Context, uow UoW, assignmentID kernel.UUID) (lockedShift, error) {
	current, err := uow.AssignmentRepository().Get(ctx, assignmentID)
	if err != nil {
		return lockedShift{}, err
	}

	j, err := uow.JobRepository().GetForUpdate(ctx, current.JobID())
	if err != nil {
		return lockedShift{}, err
	}

	w, err := uow.WorkerRepository().GetForUpdate(ctx, current.WorkerID())
	if err != nil {
		return lockedShift{}, err
	}

	a, err := uow.AssignmentRepository().GetForUpdate(ctx, assignmentID)
	if err != nil {
		return lockedShift{}, err
	}

	return lockedShift{assignment: a, job: j, worker: w}, nil
}

// save writes the three aggregates of a closed shift.
func (s lockedShift) save(ctx context.Context, uow UoW) error {
	if err := uow.JobRepository().UpdateStatus(ctx, s.job); err != nil {
		return err
	}
	if err := uow.WorkerRepository().SaveCommitments(ctx, s.worker); err != nil {
		return err
	}
	return uow.AssignmentRepository().Update(ctx, s.assignment)
}
