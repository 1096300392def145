package queries

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"
)

const (
	attendanceSheet = "Attendance"
	locationsSheet  = "Locations"

	// timesheetSampleLimit is above any configured history limit, so the
	// export carries every stored sample.
	timesheetSampleLimit = 100_000
)

// AssignmentReader reads the assignment view; GetAssignmentQueryHandler implements it.
type AssignmentReader interface {
	Handle(ctx context.Context, query GetAssignmentQuery) (AssignmentView, error)
}

type ExportTimesheetQueryHandler struct {
	assignments AssignmentReader
}

func NewExportTimesheetQueryHandler(assignments AssignmentReader) ExportTimesheetQueryHandler {
	return ExportTimesheetQueryHandler{assignments: assignments}
}

func (h ExportTimesheetQueryHandler) Handle(ctx context.Context, query ExportTimesheetQuery) (Timesheet, error) {
	if err := query.Validate(); err != nil {
		return Timesheet{}, err
	}

	viewQuery, err := NewGetAssignmentQuery(query.AssignmentID(), timesheetSampleLimit)
	if err != nil {
		return Timesheet{}, err
	}
	view, err := h.assignments.Handle(ctx, viewQuery)
	if err != nil {
		return Timesheet{}, err
	}

	content, err := renderTimesheet(view)
	if err != nil {
		return Timesheet{}, errors.Wrapf(err, "render timesheet of assignment %s", view.ID)
	}

	return Timesheet{
		FileName: fmt.Sprintf("timesheet_%s.xlsx", view.ID),
		Content:  content,
	}, nil
}

func renderTimesheet(view AssignmentView) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(locationsSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	attendance := [][]any{
		{"Assignment", view.ID.String()},
		{"Status", view.Status},
		{"Job", view.JobTitle},
		{"Worker", view.WorkerName},
		{"Applied at", formatTime(&view.AppliedAt)},
		{"Accepted at", formatTime(view.AcceptedAt)},
		{"Checked in at", formatTime(view.CheckedInAt)},
		{"Checkpoint", view.CheckpointName},
		{"Completed at", formatTime(view.CompletedAt)},
		{"Invoice", view.InvoiceID},
	}
	for i, row := range attendance {
		if err = setRow(f, attendanceSheet, i+1, row); err != nil {
			return nil, err
		}
	}
	if err = f.SetCellStyle(attendanceSheet, "A1", fmt.Sprintf("A%d", len(attendance)), headerStyle); err != nil {
		return nil, err
	}
	if err = f.SetColWidth(attendanceSheet, "A", "A", 16); err != nil {
		return nil, err
	}
	if err = f.SetColWidth(attendanceSheet, "B", "B", 40); err != nil {
		return nil, err
	}

	header := []any{"Sequence", "Recorded at", "Latitude", "Longitude", "Distance (m)", "Outside geofence"}
	if err = setRow(f, locationsSheet, 1, header); err != nil {
		return nil, err
	}
	if err = f.SetCellStyle(locationsSheet, "A1", "F1", headerStyle); err != nil {
		return nil, err
	}
	for i, s := range view.RecentSamples {
		row := []any{s.Sequence, s.RecordedAt.UTC().Format(time.RFC3339), s.Latitude, s.Longitude, s.DistanceMeters, s.OutsideGeofence}
		if err = setRow(f, locationsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err = f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
