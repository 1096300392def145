package commands

import (
	"context"

	"attendance/internal/core/ports"
)

// ReportLocationCommandHandler stores the latest position of a worker in the location feed.
type ReportLocationCommandHandler struct {
	sink ports.LocationSink
}

func NewReportLocationCommandHandler(sink ports.LocationSink) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{sink: sink}
}

func (h ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sink.ReportLocation(ctx, cmd.WorkerID(), ports.LocationFix{
		Point:      cmd.Point(),
		ReportedAt: cmd.ReportedAt(),
	})
}
