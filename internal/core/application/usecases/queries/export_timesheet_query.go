package queries

import (
	"errors"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/pkg/guard"
)

var ErrExportTimesheetQueryIsNotConstructed = errors.New(
	"ExportTimesheetQuery must be created via NewExportTimesheetQuery constructor",
)

// ExportTimesheetQuery renders an assignment's attendance record and its
// stored location history as an XLSX workbook.
type ExportTimesheetQuery struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewExportTimesheetQuery(assignmentID kernel.UUID) (ExportTimesheetQuery, error) {
	if err := assignmentID.Validate(); err != nil {
		return ExportTimesheetQuery{}, err
	}
	return ExportTimesheetQuery{assignmentID: assignmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportTimesheetQuery) Validate() error {
	return q.guard.Validate(ErrExportTimesheetQueryIsNotConstructed)
}

func (q ExportTimesheetQuery) AssignmentID() kernel.UUID {
	return q.assignmentID
}

// Timesheet is a rendered workbook.
type Timesheet struct {
	FileName string
	Content  []byte
}

// TimesheetContentType is the media type of Timesheet.Content.
const TimesheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
