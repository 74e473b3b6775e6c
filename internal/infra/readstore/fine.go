package readstore

import (
	"context"

	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FineReadStore struct {
	db db.DBTX
}

func NewFineReadStore(pool db.DBTX) *FineReadStore {
	return &FineReadStore{db: pool}
}

const fineViewSQL = `
SELECT f.id, f.booking_id, b.reference, f.number, f.issued_at, f.amount_cents,
	f.status, f.recharged_at, f.note, f.created_at, f.updated_at
FROM fines f
JOIN bookings b ON b.id = f.booking_id
`

func (r *FineReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FineView, error) {
	v, err := scanFineView(r.db.QueryRow(ctx, fineViewSQL+"WHERE f.id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("fine not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find fine by ID", err)
	}
	return v, nil
}

func (r *FineReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.FineView, error) {
	rows, err := r.db.Query(ctx, fineViewSQL+"WHERE f.booking_id = $1 ORDER BY f.issued_at DESC", bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fines by booking", err)
	}
	return collectFineViews(rows)
}

func (r *FineReadStore) ListByStatus(ctx context.Context, status string, limit int32) ([]*queries.FineView, error) {
	rows, err := r.db.Query(ctx, fineViewSQL+"WHERE f.status = $1 ORDER BY f.issued_at DESC LIMIT $2", status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fines by status", err)
	}
	return collectFineViews(rows)
}

func scanFineView(row rowScanner) (*queries.FineView, error) {
	var v queries.FineView
	err := row.Scan(
		&v.ID, &v.BookingID, &v.BookingReference, &v.Number, &v.IssuedAt, &v.AmountCents,
		&v.Status, &v.RechargedAt, &v.Note, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectFineViews(rows pgx.Rows) ([]*queries.FineView, error) {
	defer rows.Close()

	var items []*queries.FineView
	for rows.Next() {
		v, err := scanFineView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan fine", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate fines", err)
	}
	return items, nil
}
