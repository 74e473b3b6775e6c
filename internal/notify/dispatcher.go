package notify

import (
	"context"
	"log/slog"
	"time"

	"fleet-console/internal/infra/repository"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dispatchBatchSize = 50
	maxSendAttempts   = 5
)

// Dispatcher drains pending outbox jobs and hands them to the mailer or
// the event publisher depending on the job kind. Jobs are locked for the
// duration of the batch so overlapping runs never double-send.
type Dispatcher struct {
	db        *pgxpool.Pool
	mailer    Mailer
	publisher Publisher
	clock     clock.Clock
}

func NewDispatcher(pool *pgxpool.Pool, mailer Mailer, publisher Publisher, clk clock.Clock) *Dispatcher {
	return &Dispatcher{
		db:        pool,
		mailer:    mailer,
		publisher: publisher,
		clock:     clk,
	}
}

// Dispatch processes one batch of due jobs. It returns the number of
// jobs handled; send failures are recorded per job, not returned.
func (d *Dispatcher) Dispatch(ctx context.Context) (int, error) {
	tx, err := d.db.Begin(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to begin dispatch transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	outbox := repository.NewOutboxRepository(tx)
	now := d.clock.Now()

	jobs, err := outbox.DuePending(ctx, now, dispatchBatchSize)
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		if sendErr := d.send(ctx, job); sendErr != nil {
			slog.Warn("outbox job failed",
				"job_id", job.ID, "kind", job.Kind, "topic", job.Topic,
				"attempt", job.Attempts+1, "error", sendErr)
			if err := outbox.MarkFailed(ctx, job.ID, job.Attempts, maxSendAttempts, sendErr.Error(), now); err != nil {
				return 0, err
			}
			continue
		}
		if err := outbox.MarkSent(ctx, job.ID, now); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "failed to commit dispatch transaction")
	}
	return len(jobs), nil
}

func (d *Dispatcher) send(ctx context.Context, job repository.OutboxJob) error {
	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	switch job.Kind {
	case commands.JobKindEmail:
		return d.mailer.Send(sendCtx, job.Topic, job.Payload)
	case commands.JobKindEvent:
		return d.publisher.Publish(sendCtx, job.Topic, job.Topic, job.Payload)
	}
	return errs.New("unknown outbox job kind: " + job.Kind)
}
