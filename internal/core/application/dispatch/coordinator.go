// Package dispatch is the entry point used by the inbound adapters. The
// Coordinator turns plain identifiers into commands and queries and routes
// them to their handlers. Company and worker identities are always explicit
// parameters.
package dispatch

import (
	"context"
	"time"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/application/usecases/queries"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"
)

type ApplyHandler interface {
	Handle(ctx context.Context, cmd commands.ApplyForJobCommand) error
}

type AssignHandler interface {
	Handle(ctx context.Context, cmd commands.AssignWorkerCommand) (kernel.UUID, error)
}

type CheckInHandler interface {
	Handle(ctx context.Context, cmd commands.CheckInCommand) error
}

type CompleteHandler interface {
	Handle(ctx context.Context, cmd commands.CompleteAssignmentCommand) (commands.CompletionResult, error)
}

type BookOffHandler interface {
	Handle(ctx context.Context, cmd commands.BookOffCommand) error
}

type AddToRotaHandler interface {
	Handle(ctx context.Context, cmd commands.AddToRotaCommand) (ports.RotaOutcome, error)
}

type ReportLocationHandler interface {
	Handle(ctx context.Context, cmd commands.ReportLocationCommand) error
}

type FindAvailableWorkersHandler interface {
	Handle(ctx context.Context, query queries.FindAvailableWorkersQuery) ([]queries.AvailableWorker, error)
}

type GetAssignmentHandler interface {
	Handle(ctx context.Context, query queries.GetAssignmentQuery) (queries.AssignmentView, error)
}

type ExportTimesheetHandler interface {
	Handle(ctx context.Context, query queries.ExportTimesheetQuery) (queries.Timesheet, error)
}

// Handlers is everything the Coordinator routes to.
type Handlers struct {
	Apply                ApplyHandler
	Assign               AssignHandler
	CheckIn              CheckInHandler
	Complete             CompleteHandler
	BookOff              BookOffHandler
	AddToRota            AddToRotaHandler
	ReportLocation       ReportLocationHandler
	FindAvailableWorkers FindAvailableWorkersHandler
	GetAssignment        GetAssignmentHandler
	ExportTimesheet      ExportTimesheetHandler
}

type Coordinator struct {
	h     Handlers
	newID func() kernel.UUID
}

func NewCoordinator(h Handlers) *Coordinator {
	return &Coordinator{h: h, newID: kernel.NewUUID}
}

// Apply records a worker's application for a job and returns the id of the
// new Applied assignment.
func (c *Coordinator) Apply(ctx context.Context, jobID, workerID kernel.UUID) (kernel.UUID, error) {
	id := c.newID()
	cmd, err := commands.NewApplyForJobCommand(id, jobID, workerID)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = c.h.Apply.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}

// FindAvailableWorkers lists the workers of pool that are free for window
// and match filter. An empty filter matches everyone.
func (c *Coordinator) FindAvailableWorkers(
	ctx context.Context,
	pool queries.WorkerPool,
	window kernel.TimeWindow,
	filter string,
) ([]queries.AvailableWorker, error) {
	query, err := queries.NewFindAvailableWorkersQuery(window, pool, filter)
	if err != nil {
		return nil, err
	}
	return c.h.FindAvailableWorkers.Handle(ctx, query)
}

// Assign gives a job of companyID to workerID. It returns the id of the
// assignment, which is the existing application when there is one.
func (c *Coordinator) Assign(ctx context.Context, companyID, jobID, workerID kernel.UUID) (kernel.UUID, error) {
	cmd, err := commands.NewAssignWorkerCommand(companyID, jobID, workerID, c.newID())
	if err != nil {
		return kernel.UUID{}, err
	}
	return c.h.Assign.Handle(ctx, cmd)
}

func (c *Coordinator) CheckIn(ctx context.Context, assignmentID kernel.UUID, scannedCode string) error {
	cmd, err := commands.NewCheckInCommand(assignmentID, scannedCode)
	if err != nil {
		return err
	}
	return c.h.CheckIn.Handle(ctx, cmd)
}

func (c *Coordinator) CompleteWithInvoice(ctx context.Context, assignmentID kernel.UUID) (commands.CompletionResult, error) {
	cmd, err := commands.NewCompleteAssignmentCommand(assignmentID)
	if err != nil {
		return commands.CompletionResult{}, err
	}
	return c.h.Complete.Handle(ctx, cmd)
}

func (c *Coordinator) BookOff(ctx context.Context, companyID, assignmentID kernel.UUID) error {
	cmd, err := commands.NewBookOffCommand(companyID, assignmentID)
	if err != nil {
		return err
	}
	return c.h.BookOff.Handle(ctx, cmd)
}

// AddToRota is idempotent; a repeated call reports ports.RotaAlreadyExists.
func (c *Coordinator) AddToRota(ctx context.Context, companyID, workerID kernel.UUID) (ports.RotaOutcome, error) {
	cmd, err := commands.NewAddToRotaCommand(companyID, workerID)
	if err != nil {
		return 0, err
	}
	return c.h.AddToRota.Handle(ctx, cmd)
}

// ReportLocation stores the position a worker's device pushed. The geofence
// monitor of the worker's InProgress shift picks it up on its next poll.
func (c *Coordinator) ReportLocation(ctx context.Context, workerID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) error {
	cmd, err := commands.NewReportLocationCommand(workerID, point, reportedAt)
	if err != nil {
		return err
	}
	return c.h.ReportLocation.Handle(ctx, cmd)
}

// Assignment returns the read model of one assignment with up to recent
// location samples. recent <= 0 uses queries.DefaultRecentSamples.
func (c *Coordinator) Assignment(ctx context.Context, assignmentID kernel.UUID, recent int) (queries.AssignmentView, error) {
	query, err := queries.NewGetAssignmentQuery(assignmentID, recent)
	if err != nil {
		return queries.AssignmentView{}, err
	}
	return c.h.GetAssignment.Handle(ctx, query)
}

func (c *Coordinator) ExportTimesheet(ctx context.Context, assignmentID kernel.UUID) (queries.Timesheet, error) {
	query, err := queries.NewExportTimesheetQuery(assignmentID)
	if err != nil {
		return queries.Timesheet{}, err
	}
	return c.h.ExportTimesheet.Handle(ctx, query)
}
