package queries

import (
	"context"
	"database/sql"
	"slices"
	"time"

	"attendance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	assignmentViewSQL = `
		SELECT
			a.id, a.status, a.job_id, j.title, j.company_id, a.worker_id, w.name,
			a.applied_at, a.accepted_at, a.checked_in_at, a.completed_at,
			COALESCE(c.name, '') AS checkpoint_name, a.invoice_id, a.outside_geofence
		FROM assignments a
		JOIN jobs j ON j.id = a.job_id
		JOIN workers w ON w.id = a.worker_id
		LEFT JOIN checkpoints c ON c.id = a.checkpoint_id
		WHERE a.id = ?
	`
	recentSamplesSQL = `
		SELECT sequence, recorded_at, latitude, longitude, distance_meters, outside_geofence
		FROM location_samples
		WHERE assignment_id = ?
		ORDER BY sequence DESC
		LIMIT ?
	`
)

type assignmentViewRow struct {
	ID              uuid.UUID
	Status          string
	JobID           uuid.UUID
	Title           string
	CompanyID       uuid.UUID
	WorkerID        uuid.UUID
	Name            string
	AppliedAt       time.Time
	AcceptedAt      sql.NullTime
	CheckedInAt     sql.NullTime
	CompletedAt     sql.NullTime
	CheckpointName  string
	InvoiceID       string
	OutsideGeofence bool
}

type GetAssignmentQueryHandler struct {
	db *gorm.DB
}

func NewGetAssignmentQueryHandler(db *gorm.DB) GetAssignmentQueryHandler {
	return GetAssignmentQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown assignments.
func (h GetAssignmentQueryHandler) Handle(ctx context.Context, query GetAssignmentQuery) (AssignmentView, error) {
	if err := query.Validate(); err != nil {
		return AssignmentView{}, err
	}

	id := query.AssignmentID()

	rows, err := h.db.WithContext(ctx).Raw(assignmentViewSQL, id.Bytes()).Rows()
	if err != nil {
		return AssignmentView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AssignmentView{}, err
		}
		return AssignmentView{}, assignmentNotFound(id)
	}

	var row assignmentViewRow
	if err = rows.Scan(
		&row.ID, &row.Status, &row.JobID, &row.Title, &row.CompanyID, &row.WorkerID, &row.Name,
		&row.AppliedAt, &row.AcceptedAt, &row.CheckedInAt, &row.CompletedAt,
		&row.CheckpointName, &row.InvoiceID, &row.OutsideGeofence,
	); err != nil {
		return AssignmentView{}, err
	}
	if err = rows.Close(); err != nil {
		return AssignmentView{}, err
	}

	view, err := row.toView()
	if err != nil {
		return AssignmentView{}, err
	}

	var samples []SampleView
	if err = h.db.WithContext(ctx).Raw(recentSamplesSQL, id.Bytes(), query.Recent()).Scan(&samples).Error; err != nil {
		return AssignmentView{}, err
	}
	slices.Reverse(samples)
	view.RecentSamples = samples

	return view, nil
}

func (r assignmentViewRow) toView() (AssignmentView, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{r.ID, r.JobID, r.CompanyID, r.WorkerID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return AssignmentView{}, err
		}
		ids = append(ids, id)
	}

	return AssignmentView{
		ID:              ids[0],
		Status:          r.Status,
		JobID:           ids[1],
		JobTitle:        r.Title,
		CompanyID:       ids[2],
		WorkerID:        ids[3],
		WorkerName:      r.Name,
		AppliedAt:       r.AppliedAt,
		AcceptedAt:      nullTime(r.AcceptedAt),
		CheckedInAt:     nullTime(r.CheckedInAt),
		CompletedAt:     nullTime(r.CompletedAt),
		CheckpointName:  r.CheckpointName,
		InvoiceID:       r.InvoiceID,
		OutsideGeofence: r.OutsideGeofence,
	}, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
