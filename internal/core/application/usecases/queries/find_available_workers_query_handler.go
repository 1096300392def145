package queries

import (
	"context"
	"time"

	"attendance/internal/core/domain/model/kernel"
	"attendance/internal/core/domain/model/worker"
	"attendance/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	directoryWorkersSQL = `
		SELECT id, name, email, phone, city
		FROM workers
		ORDER BY name, id
	`
	pooledWorkersSQL = `
		SELECT id, name, email, phone, city
		FROM workers
		WHERE id = ANY(?::uuid[])
	`
	rotaWorkersSQL = `
		SELECT w.id, w.name, w.email, w.phone, w.city
		FROM workers w
		JOIN rota_members r ON r.worker_id = w.id
		WHERE r.company_id = ?
		ORDER BY r.added_at, w.id
	`
	activeCommitmentsSQL = `
		SELECT worker_id, job_id, window_start, window_end
		FROM worker_commitments
		WHERE released_at IS NULL AND worker_id = ANY(?::uuid[])
	`
)

type workerRow struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
	City  string
}

type commitmentRow struct {
	WorkerID    uuid.UUID
	JobID       uuid.UUID
	WindowStart time.Time
	WindowEnd   time.Time
}

// FindAvailableWorkersQueryHandler loads the pool with its active
// commitments and applies the schedule conflict resolver, then the filter.
type FindAvailableWorkersQueryHandler struct {
	db       *gorm.DB
	resolver services.ScheduleConflictResolver
}

func NewFindAvailableWorkersQueryHandler(db *gorm.DB, resolver services.ScheduleConflictResolver) FindAvailableWorkersQueryHandler {
	return FindAvailableWorkersQueryHandler{db: db, resolver: resolver}
}

func (h FindAvailableWorkersQueryHandler) Handle(ctx context.Context, query FindAvailableWorkersQuery) ([]AvailableWorker, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.loadPool(ctx, query.Pool())
	if err != nil {
		return nil, err
	}

	candidates, err := h.withCommitments(ctx, rows)
	if err != nil {
		return nil, err
	}

	free := h.resolver.FilterAvailable(candidates, query.Window())

	result := make([]AvailableWorker, 0, len(free))
	for _, w := range free {
		if !w.Matches(query.Filter()) {
			continue
		}
		result = append(result, AvailableWorker{
			ID:    w.ID(),
			Name:  w.Name(),
			Email: w.Email(),
			Phone: w.Phone(),
			City:  w.City(),
		})
	}
	return result, nil
}

func (h FindAvailableWorkersQueryHandler) loadPool(ctx context.Context, pool WorkerPool) ([]workerRow, error) {
	var rows []workerRow

	switch {
	case pool.RotaOf != nil:
		if err := h.db.WithContext(ctx).Raw(rotaWorkersSQL, pool.RotaOf.Bytes()).Scan(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil

	case len(pool.WorkerIDs) > 0:
		if err := h.db.WithContext(ctx).Raw(pooledWorkersSQL, pq.Array(uuidStrings(pool.WorkerIDs))).Scan(&rows).Error; err != nil {
			return nil, err
		}
		return inPoolOrder(rows, pool.WorkerIDs), nil

	default:
		if err := h.db.WithContext(ctx).Raw(directoryWorkersSQL).Scan(&rows).Error; err != nil {
			return nil, err
		}
		return rows, nil
	}
}

func (h FindAvailableWorkersQueryHandler) withCommitments(ctx context.Context, rows []workerRow) ([]*worker.Worker, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID.String())
	}

	var commitmentRows []commitmentRow
	if err := h.db.WithContext(ctx).Raw(activeCommitmentsSQL, pq.Array(ids)).Scan(&commitmentRows).Error; err != nil {
		return nil, err
	}

	byWorker := make(map[uuid.UUID][]*worker.Commitment, len(rows))
	for _, c := range commitmentRows {
		jobID, err := kernel.UUIDFromBytes(c.JobID[:])
		if err != nil {
			return nil, err
		}
		window, err := kernel.NewTimeWindow(c.WindowStart, c.WindowEnd)
		if err != nil {
			return nil, err
		}
		commitment, err := worker.NewCommitment(jobID, window)
		if err != nil {
			return nil, err
		}
		byWorker[c.WorkerID] = append(byWorker[c.WorkerID], commitment)
	}

	workers := make([]*worker.Worker, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		w, err := worker.RestoreWorker(id, r.Name, worker.Contact{Email: r.Email, Phone: r.Phone, City: r.City}, byWorker[r.ID])
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, nil
}

// inPoolOrder orders rows like ids, dropping unknown and repeated ids.
func inPoolOrder(rows []workerRow, ids []kernel.UUID) []workerRow {
	byID := make(map[uuid.UUID]workerRow, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	ordered := make([]workerRow, 0, len(rows))
	for _, id := range ids {
		r, ok := byID[id.Bytes()]
		if !ok {
			continue
		}
		ordered = append(ordered, r)
		delete(byID, id.Bytes())
	}
	return ordered
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
