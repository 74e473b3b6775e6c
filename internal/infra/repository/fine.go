package repository

import (
	"context"
	"time"

	"fleet-console/internal/domain/fine"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FineRepository struct {
	db db.DBTX
}

func NewFineRepository(pool db.DBTX) *FineRepository {
	return &FineRepository{db: pool}
}

func (r *FineRepository) Create(ctx context.Context, tx db.DBTX, f *fine.Fine, now time.Time) error {
	var note *string
	if f.Note() != "" {
		n := f.Note()
		note = &n
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO fines (id, booking_id, number, issued_at, amount_cents, status, recharged_at, note, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		f.ID(), f.BookingID(), f.Number(), f.IssuedAt(), f.AmountCents(),
		f.Status().String(), pgconv.TimePtrToPgtype(f.RechargedAt()),
		pgconv.StringPtrToPgtype(note), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create fine", err, pgErrKind(err))
	}
	return nil
}

const selectFineSQL = `
SELECT id, booking_id, number, issued_at, amount_cents, status, recharged_at, note, created_at, updated_at
FROM fines WHERE id = $1`

func (r *FineRepository) FindByID(ctx context.Context, id uuid.UUID) (*fine.Fine, error) {
	var (
		fineID      uuid.UUID
		bookingID   uuid.UUID
		number      string
		issuedAt    time.Time
		amountCents int64
		status      string
		rechargedAt *time.Time
		note        *string
		createdAt   time.Time
		updatedAt   time.Time
	)

	err := r.db.QueryRow(ctx, selectFineSQL, id).Scan(
		&fineID, &bookingID, &number, &issuedAt, &amountCents,
		&status, &rechargedAt, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("fine not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find fine by ID", err)
	}

	noteVal := ""
	if note != nil {
		noteVal = *note
	}

	return fine.ReconstructFine(
		fineID, bookingID, number, issuedAt, amountCents,
		fine.Status(status), rechargedAt, noteVal, createdAt, updatedAt,
	), nil
}

func (r *FineRepository) Update(ctx context.Context, tx db.DBTX, f *fine.Fine, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE fines SET status = $1, recharged_at = $2, updated_at = $3 WHERE id = $4`,
		f.Status().String(), pgconv.TimePtrToPgtype(f.RechargedAt()), now, f.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update fine", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("fine not found", nil, infra.KindNotFound)
	}
	return nil
}

// MarkOverdueOlderThan flips pending fines issued before the threshold to
// overdue. Used by the nightly scheduler job.
func (r *FineRepository) MarkOverdueOlderThan(ctx context.Context, threshold, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE fines SET status = $1, updated_at = $2 WHERE status = $3 AND issued_at < $4`,
		fine.StatusOverdue.String(), now, fine.StatusPending.String(), threshold,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark overdue fines", err)
	}
	return tag.RowsAffected(), nil
}
