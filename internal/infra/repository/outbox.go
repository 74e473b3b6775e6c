package repository

import (
	"context"
	"time"

	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// Outbox job statuses
const (
	JobStatusPending = "pending"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
)

type OutboxJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	Status    string
	LastError *string
}

// OutboxRepository persists notification jobs in the same transaction as
// the state change that triggers them; the dispatcher drains them later.
type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(pool db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: pool}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO outbox_jobs (id, kind, topic, payload, run_at, attempts, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, $6, $5, $5)`,
		uuid.New(), kind, topic, payload, runAt, JobStatusPending,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox job", err, pgErrKind(err))
	}
	return nil
}

// DuePending locks a batch of runnable jobs so concurrent dispatcher runs
// do not double-send.
func (r *OutboxRepository) DuePending(ctx context.Context, now time.Time, limit int32) ([]OutboxJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, kind, topic, payload, run_at, attempts, status, last_error
		 FROM outbox_jobs
		 WHERE status = $1 AND run_at <= $2
		 ORDER BY run_at
		 LIMIT $3
		 FOR UPDATE SKIP LOCKED`,
		JobStatusPending, now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load due outbox jobs", err)
	}
	defer rows.Close()

	var jobs []OutboxJob
	for rows.Next() {
		var j OutboxJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Attempts, &j.Status, &j.LastError); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate outbox jobs", err)
	}
	return jobs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE outbox_jobs SET status = $1, attempts = attempts + 1, updated_at = $2 WHERE id = $3`,
		JobStatusSent, now, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox job sent", err)
	}
	return nil
}

// MarkFailed retries with a flat backoff until the attempt budget runs
// out, then parks the job as failed for manual inspection.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int32, maxAttempts int32, cause string, now time.Time) error {
	status := JobStatusPending
	runAt := now.Add(5 * time.Minute)
	if attempts+1 >= maxAttempts {
		status = JobStatusFailed
	}
	_, err := r.db.Exec(ctx,
		`UPDATE outbox_jobs SET status = $1, attempts = attempts + 1, run_at = $2, last_error = $3, updated_at = $4 WHERE id = $5`,
		status, runAt, pgconv.StringToPgtype(cause), now, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox job failed", err)
	}
	return nil
}
