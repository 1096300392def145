package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"attendance/internal/core/application/usecases/commands"
	"attendance/internal/core/application/usecases/queries"
	"attendance/internal/core/domain/model/assignment"
	"attendance/internal/core/domain/model/job"
	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/services"
	"attendance/internal/core/ports"
	"attendance/internal/generated/servers"
	"attendance/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Apply(ctx context.Context, jobID, workerID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, jobID, workerID)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockDispatcher) FindAvailableWorkers(
	ctx context.Context,
	pool queries.WorkerPool,
	window kernel.TimeWindow,
	filter string,
) ([]queries.AvailableWorker, error) {
	args := m.Called(ctx, pool, window, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.AvailableWorker), args.Error(1)
}

func (m *MockDispatcher) Assign(ctx context.Context, companyID, jobID, workerID kernel.UUID) (kernel.UUID, error) {
	args := m.Called(ctx, companyID, jobID, workerID)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockDispatcher) CheckIn(ctx context.Context, assignmentID kernel.UUID, scannedCode string) error {
	return m.Called(ctx, assignmentID, scannedCode).Error(0)
}

func (m *MockDispatcher) CompleteWithInvoice(ctx context.Context, assignmentID kernel.UUID) (commands.CompletionResult, error) {
	args := m.Called(ctx, assignmentID)
	return args.Get(0).(commands.CompletionResult), args.Error(1)
}

func (m *MockDispatcher) BookOff(ctx context.Context, companyID, assignmentID kernel.UUID) error {
	return m.Called(ctx, companyID, assignmentID).Error(0)
}

func (m *MockDispatcher) AddToRota(ctx context.Context, companyID, workerID kernel.UUID) (ports.RotaOutcome, error) {
	args := m.Called(ctx, companyID, workerID)
	return args.Get(0).(ports.RotaOutcome), args.Error(1)
}

func (m *MockDispatcher) ReportLocation(ctx context.Context, workerID kernel.UUID, point kernel.GeoPoint, reportedAt time.Time) error {
	return m.Called(ctx, workerID, point, reportedAt).Error(0)
}

func (m *MockDispatcher) Assignment(ctx context.Context, assignmentID kernel.UUID, recent int) (queries.AssignmentView, error) {
	args := m.Called(ctx, assignmentID, recent)
	return args.Get(0).(queries.AssignmentView), args.Error(1)
}

func (m *MockDispatcher) ExportTimesheet(ctx context.Context, assignmentID kernel.UUID) (queries.Timesheet, error) {
	args := m.Called(ctx, assignmentID)
	return args.Get(0).(queries.Timesheet), args.Error(1)
}

func newTestRouter(t *testing.T, dispatcher *MockDispatcher, cfg RouterConfig) *echo.Echo {
	t.Helper()
	cfg.LogLevel = log.OFF
	server := NewServer(dispatcher, zap.NewNop())
	return NewRouter(cfg, server, nil, zap.NewNop())
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e := newTestRouter(t, new(MockDispatcher), RouterConfig{})

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestApplyForJob_Created(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	jobID, workerID, assignmentID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	dispatcher.On("Apply", mock.Anything, jobID, workerID).Return(assignmentID, nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/applications",
		`{"workerId":"`+workerID.String()+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var ref servers.AssignmentRef
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ref))
	assert.Equal(t, assignmentID.String(), ref.AssignmentId.String())
	dispatcher.AssertExpectations(t)
}

func TestAssignWorker_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"job already assigned", &services.JobAlreadyAssignedError{}, http.StatusConflict},
		{"worker unavailable", services.ErrWorkerUnavailable, http.StatusConflict},
		{"job closed", &services.JobNotOpenError{Status: job.Completed}, http.StatusConflict},
		{"job of another company", commands.ErrJobNotOwnedByCompany, http.StatusForbidden},
		{"unknown job", errs.NewObjectNotFoundError("job", "x"), http.StatusNotFound},
		{"database down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := new(MockDispatcher)
			e := newTestRouter(t, dispatcher, RouterConfig{})
			companyID, jobID, workerID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
			dispatcher.On("Assign", mock.Anything, companyID, jobID, workerID).Return(kernel.UUID{}, tt.err)

			rec := doJSON(e, http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/assignment",
				`{"companyId":"`+companyID.String()+`","workerId":"`+workerID.String()+`"}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestAssignWorker_InternalErrorHidesDetails(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	dispatcher.On("Assign", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(kernel.UUID{}, errors.New("pq: password authentication failed"))

	rec := doJSON(e, http.MethodPost, "/api/v1/jobs/"+kernel.NewUUID().String()+"/assignment",
		`{"companyId":"`+kernel.NewUUID().String()+`","workerId":"`+kernel.NewUUID().String()+`"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal error", decodeError(t, rec).Message)
}

func TestCheckIn_MismatchKeepsAssignmentAndReports422(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	assignmentID := kernel.NewUUID()
	dispatcher.On("CheckIn", mock.Anything, assignmentID, "ABC123").
		Return(&services.CheckpointMismatchError{ScannedCode: "ABC123"})

	rec := doJSON(e, http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/check-in", `{"code":"ABC123"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Message, "ABC123")
	assert.NotContains(t, body.Message, "XYZ789")
}

func TestCheckIn_OutOfOrderIsConflict(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	assignmentID := kernel.NewUUID()
	dispatcher.On("CheckIn", mock.Anything, assignmentID, "XYZ789").
		Return(&assignment.InvalidTransitionError{From: assignment.Applied, To: assignment.InProgress})

	rec := doJSON(e, http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/check-in", `{"code":"XYZ789"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckIn_Success(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	assignmentID := kernel.NewUUID()
	dispatcher.On("CheckIn", mock.Anything, assignmentID, "XYZ789").Return(nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/check-in", `{"code":"XYZ789"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	dispatcher.AssertExpectations(t)
}

func TestCompleteAssignment_ReturnsInvoice(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	assignmentID := kernel.NewUUID()
	dispatcher.On("CompleteWithInvoice", mock.Anything, assignmentID).Return(commands.CompletionResult{
		InvoiceID:    "INV-1",
		HoursWorked:  8,
		PricePerHour: 20,
		TotalPrice:   160,
	}, nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/completion", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.Completion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INV-1", body.InvoiceId)
	assert.InDelta(t, 8.0, body.HoursWorked, 1e-9)
	assert.InDelta(t, 160.0, body.TotalPrice, 1e-9)
}

func TestBookOff(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	companyID, assignmentID := kernel.NewUUID(), kernel.NewUUID()
	dispatcher.On("BookOff", mock.Anything, companyID, assignmentID).Return(nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/assignments/"+assignmentID.String()+"/book-off",
		`{"companyId":"`+companyID.String()+`"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	dispatcher.AssertExpectations(t)
}

func TestAddToRota_IsIdempotent(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	companyID, workerID := kernel.NewUUID(), kernel.NewUUID()
	dispatcher.On("AddToRota", mock.Anything, companyID, workerID).Return(ports.RotaCreated, nil).Once()
	dispatcher.On("AddToRota", mock.Anything, companyID, workerID).Return(ports.RotaAlreadyExists, nil).Once()
	target := "/api/v1/companies/" + companyID.String() + "/rota"
	body := `{"workerId":"` + workerID.String() + `"}`

	first := doJSON(e, http.MethodPost, target, body)
	second := doJSON(e, http.MethodPost, target, body)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Contains(t, first.Body.String(), `"created"`)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), `"alreadyExists"`)
}

func TestFindAvailableWorkers(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	companyID, workerID := kernel.NewUUID(), kernel.NewUUID()
	start := time.Date(2025, 7, 26, 17, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	dispatcher.On("FindAvailableWorkers", mock.Anything,
		mock.MatchedBy(func(p queries.WorkerPool) bool { return p.RotaOf != nil && p.RotaOf.IsEqual(companyID) }),
		mock.MatchedBy(func(w kernel.TimeWindow) bool { return w.Start().Equal(start) && w.End().Equal(end) }),
		"mansehra",
	).Return([]queries.AvailableWorker{{ID: workerID, Name: "Ayesha Khan", City: "Mansehra"}}, nil)

	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))
	query.Set("rotaOf", companyID.String())
	query.Set("filter", "mansehra")
	rec := doJSON(e, http.MethodGet, "/api/v1/workers/available?"+query.Encode(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.AvailableWorker
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Ayesha Khan", body[0].Name)
	assert.Nil(t, body[0].Email)
	require.NotNil(t, body[0].City)
	assert.Equal(t, "Mansehra", *body[0].City)
}

func TestFindAvailableWorkers_InvertedWindowIsBadRequest(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	start := time.Date(2025, 7, 26, 17, 0, 0, 0, time.UTC)

	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", start.Add(-time.Hour).Format(time.RFC3339))
	rec := doJSON(e, http.MethodGet, "/api/v1/workers/available?"+query.Encode(), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	dispatcher.AssertNotCalled(t, "FindAvailableWorkers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportLocation(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	workerID := kernel.NewUUID()
	reportedAt := time.Date(2025, 7, 26, 10, 0, 0, 0, time.UTC)
	dispatcher.On("ReportLocation", mock.Anything, workerID,
		mock.MatchedBy(func(p kernel.GeoPoint) bool { return p.Latitude() == 34.2050 && p.Longitude() == 73.25 }),
		mock.MatchedBy(func(at time.Time) bool { return at.Equal(reportedAt) }),
	).Return(nil)

	rec := doJSON(e, http.MethodPost, "/api/v1/workers/"+workerID.String()+"/location",
		`{"latitude":34.2050,"longitude":73.2500,"reportedAt":"2025-07-26T10:00:00Z"}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	dispatcher.AssertExpectations(t)
}

func TestReportLocation_InvalidCoordinate(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})

	rec := doJSON(e, http.MethodPost, "/api/v1/workers/"+kernel.NewUUID().String()+"/location",
		`{"latitude":95,"longitude":73.25}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportLocation_RateLimitedPerWorker(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{LocationRatePerSecond: 0.001, LocationBurst: 1})
	dispatcher.On("ReportLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	first, second := kernel.NewUUID(), kernel.NewUUID()
	body := `{"latitude":34.19732,"longitude":73.24223}`

	assert.Equal(t, http.StatusAccepted, doJSON(e, http.MethodPost, "/api/v1/workers/"+first.String()+"/location", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, doJSON(e, http.MethodPost, "/api/v1/workers/"+first.String()+"/location", body).Code)
	assert.Equal(t, http.StatusAccepted, doJSON(e, http.MethodPost, "/api/v1/workers/"+second.String()+"/location", body).Code)
}

func TestGetAssignment(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	assignmentID := kernel.NewUUID()
	checkedIn := time.Date(2025, 7, 26, 9, 0, 0, 0, time.UTC)
	dispatcher.On("Assignment", mock.Anything, assignmentID, 5).Return(queries.AssignmentView{
		ID:              assignmentID,
		Status:          "inProgress",
		JobTitle:        "Event steward",
		WorkerName:      "Ayesha Khan",
		CheckedInAt:     &checkedIn,
		CheckpointName:  "Main gate",
		OutsideGeofence: true,
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/assignments/"+assignmentID.String()+"?recent=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.Assignment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, servers.AssignmentStatus("inProgress"), body.Status)
	assert.True(t, body.OutsideGeofence)
	require.NotNil(t, body.CheckpointName)
	assert.Equal(t, "Main gate", *body.CheckpointName)
	assert.Nil(t, body.InvoiceId)
}

func TestGetAssignment_MalformedID(t *testing.T) {
	e := newTestRouter(t, new(MockDispatcher), RouterConfig{})

	rec := doJSON(e, http.MethodGet, "/api/v1/assignments/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
}

func TestExportTimesheet(t *testing.T) {
	dispatcher := new(MockDispatcher)
	e := newTestRouter(t, dispatcher, RouterConfig{})
	assignmentID := kernel.NewUUID()
	dispatcher.On("ExportTimesheet", mock.Anything, assignmentID).Return(queries.Timesheet{
		FileName: "timesheet.xlsx",
		Content:  []byte("PK"),
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/assignments/"+assignmentID.String()+"/timesheet", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, queries.TimesheetContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "timesheet.xlsx")
	assert.Equal(t, "PK", rec.Body.String())
}
