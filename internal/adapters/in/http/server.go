package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/application/usecases/queries"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/ports"
	"attendance/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dispatcher is the application entry point; dispatch.Coordinator implements it.
type Dispatcher interface {
	Apply(ctx context.Context, jobID, workerID kernel.UUID) (kernel.UUID, error)
	FindAvailableWorkers(ctx context.Context, pool queries.WorkerPool, window kernel.TimeWindow, filter string) ([]queries.AvailableWorker, error)
	Assign(ctx context.Context, companyID, jobID, workerID kernel.UUID) (kernel.UUID, error)
	CheckIn(ctx context.Context, assignmentID kernel.UUID, scannedCode string) error
	CompleteWithInvoice(ctx context.Context, assignmentID kernel.UUID) (commands.CompletionResult, error)
	BookOff(ctx context.Context, companyID, assignmentID kernel.UUID) error
	AddToRota(ctx context.Context, companyID, workerID kernel.UUID) (ports.RotaOutcome, error)
	ReportLocation(ctx context.Context, workerID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) error
	Assignment(ctx context.Context, assignmentID kernel.UUID, recent int) (queries.AssignmentView, error)
	ExportTimesheet(ctx context.Context, assignmentID kernel.UUID) (queries.Timesheet, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
type Server struct {
	dispatcher Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

func NewServer(dispatcher Dispatcher, logger *zap.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "http")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ApplyForJob handles POST /api/v1/jobs/{jobId}/applications.
func (s *Server) ApplyForJob(ctx echo.Context, jobId servers.JobId) error {
	var body servers.ApplyForJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	jobID, workerID, err := ids(jobId, body.WorkerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	assignmentID, err := s.dispatcher.Apply(ctx.Request().Context(), jobID, workerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.AssignmentRef{AssignmentId: assignmentID.Bytes()})
}

// AssignWorker handles POST /api/v1/jobs/{jobId}/assignment.
func (s *Server) AssignWorker(ctx echo.Context, jobId servers.JobId) error {
	var body servers.AssignWorkerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parsed, err := parseIDs(jobId, body.CompanyId, body.WorkerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	assignmentID, err := s.dispatcher.Assign(ctx.Request().Context(), parsed[1], parsed[0], parsed[2])
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.AssignmentRef{AssignmentId: assignmentID.Bytes()})
}

// CheckIn handles POST /api/v1/assignments/{assignmentId}/check-in.
func (s *Server) CheckIn(ctx echo.Context, assignmentId servers.AssignmentId) error {
	var body servers.CheckInJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernel(assignmentId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.dispatcher.CheckIn(ctx.Request().Context(), id, body.Code); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteAssignment handles POST /api/v1/assignments/{assignmentId}/completion.
func (s *Server) CompleteAssignment(ctx echo.Context, assignmentId servers.AssignmentId) error {
	id, err := toKernel(assignmentId)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.dispatcher.CompleteWithInvoice(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Completion{
		InvoiceId:    result.InvoiceID,
		HoursWorked:  result.HoursWorked,
		PricePerHour: result.PricePerHour,
		TotalPrice:   result.TotalPrice,
	})
}

// BookOff handles POST /api/v1/assignments/{assignmentId}/book-off.
func (s *Server) BookOff(ctx echo.Context, assignmentId servers.AssignmentId) error {
	var body servers.BookOffJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, companyID, err := ids(assignmentId, body.CompanyId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.dispatcher.BookOff(ctx.Request().Context(), companyID, id); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignment handles GET /api/v1/assignments/{assignmentId}.
func (s *Server) GetAssignment(ctx echo.Context, assignmentId servers.AssignmentId, params servers.GetAssignmentParams) error {
	id, err := toKernel(assignmentId)
	if err != nil {
		return s.fail(ctx, err)
	}

	recent := 0
	if params.Recent != nil {
		recent = *params.Recent
	}

	view, err := s.dispatcher.Assignment(ctx.Request().Context(), id, recent)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, assignmentResponse(view))
}

// ExportTimesheet handles GET /api/v1/assignments/{assignmentId}/timesheet.
func (s *Server) ExportTimesheet(ctx echo.Context, assignmentId servers.AssignmentId) error {
	id, err := toKernel(assignmentId)
	if err != nil {
		return s.fail(ctx, err)
	}

	sheet, err := s.dispatcher.ExportTimesheet(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", sheet.FileName))
	return ctx.Blob(http.StatusOK, queries.TimesheetContentType, sheet.Content)
}

// FindAvailableWorkers handles GET /api/v1/workers/available.
func (s *Server) FindAvailableWorkers(ctx echo.Context, params servers.FindAvailableWorkersParams) error {
	window, err := kernel.NewTimeWindow(params.Start, params.End)
	if err != nil {
		return s.fail(ctx, err)
	}

	var pool queries.WorkerPool
	if params.RotaOf != nil {
		companyID, rotaErr := toKernel(*params.RotaOf)
		if rotaErr != nil {
			return s.fail(ctx, rotaErr)
		}
		pool.RotaOf = &companyID
	}
	if params.WorkerIds != nil {
		pool.WorkerIDs, err = parseIDs(*params.WorkerIds...)
		if err != nil {
			return s.fail(ctx, err)
		}
	}

	filter := ""
	if params.Filter != nil {
		filter = *params.Filter
	}

	found, err := s.dispatcher.FindAvailableWorkers(ctx.Request().Context(), pool, window, filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.AvailableWorker, len(found))
	for i, w := range found {
		response[i] = servers.AvailableWorker{
			Id:    w.ID.Bytes(),
			Name:  w.Name,
			Email: optional(w.Email),
			Phone: optional(w.Phone),
			City:  optional(w.City),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ReportLocation handles POST /api/v1/workers/{workerId}/location.
func (s *Server) ReportLocation(ctx echo.Context, workerId uuid.UUID) error {
	var body servers.ReportLocationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID, err := toKernel(workerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	point, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	reportedAt := s.now()
	if body.ReportedAt != nil {
		reportedAt = *body.ReportedAt
	}

	if err = s.dispatcher.ReportLocation(ctx.Request().Context(), workerID, point, reportedAt); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusAccepted)
}

// AddToRota handles POST /api/v1/companies/{companyId}/rota.
func (s *Server) AddToRota(ctx echo.Context, companyId uuid.UUID) error {
	var body servers.AddToRotaJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	companyID, workerID, err := ids(companyId, body.WorkerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	outcome, err := s.dispatcher.AddToRota(ctx.Request().Context(), companyID, workerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if outcome == ports.RotaAlreadyExists {
		return ctx.JSON(http.StatusOK, servers.RotaResult{Outcome: servers.AlreadyExists})
	}
	return ctx.JSON(http.StatusCreated, servers.RotaResult{Outcome: servers.Created})
}

func assignmentResponse(v queries.AssignmentView) servers.Assignment {
	samples := make([]servers.LocationSample, len(v.RecentSamples))
	for i, sample := range v.RecentSamples {
		samples[i] = servers.LocationSample{
			Sequence:        sample.Sequence,
			RecordedAt:      sample.RecordedAt,
			Latitude:        sample.Latitude,
			Longitude:       sample.Longitude,
			DistanceMeters:  sample.DistanceMeters,
			OutsideGeofence: sample.OutsideGeofence,
		}
	}

	return servers.Assignment{
		Id:              v.ID.Bytes(),
		Status:          servers.AssignmentStatus(v.Status),
		JobId:           v.JobID.Bytes(),
		JobTitle:        v.JobTitle,
		CompanyId:       v.CompanyID.Bytes(),
		WorkerId:        v.WorkerID.Bytes(),
		WorkerName:      v.WorkerName,
		AppliedAt:       v.AppliedAt,
		AcceptedAt:      v.AcceptedAt,
		CheckedInAt:     v.CheckedInAt,
		CompletedAt:     v.CompletedAt,
		CheckpointName:  optional(v.CheckpointName),
		InvoiceId:       optional(v.InvoiceID),
		OutsideGeofence: v.OutsideGeofence,
		RecentSamples:   samples,
	}
}

func toKernel(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func ids(a, b uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	parsed, err := parseIDs(a, b)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return parsed[0], parsed[1], nil
}

func parseIDs(raw ...uuid.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, len(raw))
	for i, id := range raw {
		parsed, err := toKernel(id)
		if err != nil {
			return nil, err
		}
		out[i] = parsed
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
