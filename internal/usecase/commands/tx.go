package commands

import (
	"context"

	"fleet-console/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

// Outbox job kinds understood by the dispatcher.
const (
	JobKindEmail = "email"
	JobKindEvent = "event"
)

// DB is the slice of pgxpool.Pool the command side needs to open
// transactions.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

func withTx(ctx context.Context, pool DB, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	return errs.Wrap(tx.Commit(ctx), "failed to commit transaction")
}
