package commands

import (
	"context"
	"time"

	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/ports"

	"go.uber.org/zap"
)

// CompletionResult describes the invoice issued for a completed shift.
type CompletionResult struct {
	InvoiceID    string
	HoursWorked  float64
	PricePerHour float64
	TotalPrice   float64
}

// CompleteAssignmentCommandHandler closes an InProgress shift with an invoice.
//
// Hours are the job's declared schedule, not the check-in to completion time.
// The invoice is requested inside the transaction with the assignment id as
// the idempotency key, so a retry after a failed commit does not bill twice.
// The geofence monitor is stopped after the commit and before Handle returns.
type CompleteAssignmentCommandHandler struct {
	uowFactory UoWFactory
	invoices   ports.InvoiceService
	tracking   ports.TrackingController
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

func NewCompleteAssignmentCommandHandler(
	uowFactory UoWFactory,
	invoices ports.InvoiceService,
	tracking ports.TrackingController,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) CompleteAssignmentCommandHandler {
	return CompleteAssignmentCommandHandler{
		uowFactory: uowFactory,
		invoices:   invoices,
		tracking:   tracking,
		publisher:  publisher,
		logger:     logger.With(zap.String("component", "complete-assignment")),
	}
}

func (h CompleteAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteAssignmentCommand) (CompletionResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompletionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompletionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shift, err := lockShift(ctx, uow, cmd.AssignmentID())
	if err != nil {
		return CompletionResult{}, err
	}
	a, j := shift.assignment, shift.job

	if err = a.EnsureCanTransitionTo(assignment.Completed); err != nil {
		return CompletionResult{}, err
	}

	hours := j.Schedule().ScheduledHours()
	req := ports.InvoiceRequest{
		AssignmentID: a.ID(),
		JobID:        j.ID(),
		WorkerID:     a.WorkerID(),
		CompanyID:    j.CompanyID(),
		HoursWorked:  hours,
		PricePerHour: j.HourlyRate(),
		TotalPrice:   j.Price(hours),
	}

	invoiceID, err := h.invoices.CreateInvoice(ctx, req)
	if err != nil {
		return CompletionResult{}, err
	}

	now := time.Now().UTC()
	if err = a.Complete(invoiceID, now); err != nil {
		return CompletionResult{}, err
	}
	if err = j.MarkCompleted(); err != nil {
		return CompletionResult{}, err
	}
	if err = shift.worker.Release(j.ID(), now); err != nil {
		return CompletionResult{}, err
	}

	if err = shift.save(ctx, uow); err != nil {
		return CompletionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompletionResult{}, err
	}

	if err = h.tracking.StopTracking(ctx, a.ID()); err != nil {
		h.logger.Warn("failed to stop tracking", zap.String("assignment_id", a.ID().String()), zap.Error(err))
	}

	publishCommitted(ctx, h.publisher, h.logger, a.PullEvents())

	return CompletionResult{
		InvoiceID:    invoiceID,
		HoursWorked:  req.HoursWorked,
		PricePerHour: req.PricePerHour,
		TotalPrice:   req.TotalPrice,
	}, nil
}
