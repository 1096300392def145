// Package invoicing requests invoices from the billing service over HTTP.
package invoicing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"attendance/internal/core/ports"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const IdempotencyKeyHeader = "Idempotency-Key"

var _ ports.InvoiceService = (*Client)(nil)

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
	// RetryWaitMin and RetryWaitMax bound the exponential backoff.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client posts invoice requests to {BaseURL}/invoices. The assignment id is
// sent as the idempotency key, so retried requests never bill twice.
type Client struct {
	http    *retryablehttp.Client
	baseURL string
}

type invoiceRequest struct {
	AssignmentID string  `json:"assignmentId"`
	JobID        string  `json:"jobId"`
	WorkerID     string  `json:"workerId"`
	CompanyID    string  `json:"companyId"`
	HoursWorked  float64 `json:"hoursWorked"`
	PricePerHour float64 `json:"pricePerHour"`
	TotalPrice   float64 `json:"totalPrice"`
}

type invoiceResponse struct {
	InvoiceID string `json:"invoiceId"`
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = leveledLogger{logger: logger.With(zap.String("component", "invoicing")).Sugar()}
	if cfg.RetryMax > 0 {
		rc.RetryMax = cfg.RetryMax
	}
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}

	return &Client{
		http:    rc,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (c *Client) CreateInvoice(ctx context.Context, req ports.InvoiceRequest) (string, error) {
	body, err := json.Marshal(invoiceRequest{
		AssignmentID: req.AssignmentID.String(),
		JobID:        req.JobID.String(),
		WorkerID:     req.WorkerID.String(),
		CompanyID:    req.CompanyID.String(),
		HoursWorked:  req.HoursWorked,
		PricePerHour: req.PricePerHour,
		TotalPrice:   req.TotalPrice,
	})
	if err != nil {
		return "", errors.Wrap(err, "encoding invoice request")
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/invoices", body)
	if err != nil {
		return "", errors.Wrap(err, "building invoice request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(IdempotencyKeyHeader, req.AssignmentID.String())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", errors.Wrapf(err, "requesting invoice for assignment %s", req.AssignmentID)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errors.Newf("invoice service answered %d for assignment %s: %s",
			resp.StatusCode, req.AssignmentID, bytes.TrimSpace(detail))
	}

	var out invoiceResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "decoding invoice response")
	}
	if out.InvoiceID == "" {
		return "", errors.Newf("invoice service returned no invoice id for assignment %s", req.AssignmentID)
	}
	return out.InvoiceID, nil
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) { l.logger.Errorw(msg, keysAndValues...) }
func (l leveledLogger) Info(msg string, keysAndValues ...any)  { l.logger.Debugw(msg, keysAndValues...) }
func (l leveledLogger) Debug(msg string, keysAndValues ...any) { l.logger.Debugw(msg, keysAndValues...) }
func (l leveledLogger) Warn(msg string, keysAndValues ...any)  { l.logger.Warnw(msg, keysAndValues...) }
