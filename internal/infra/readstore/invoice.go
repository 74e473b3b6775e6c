package readstore

import (
	"context"
	"time"

	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(pool db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: pool}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	var v queries.InvoiceView
	err := r.db.QueryRow(ctx,
		`SELECT i.id, i.booking_id, b.reference, i.number, i.issued_at, i.total_cents,
			i.status, i.voided_at, i.created_at, i.updated_at
		 FROM invoices i
		 JOIN bookings b ON b.id = i.booking_id
		 WHERE i.id = $1`, id,
	).Scan(&v.ID, &v.BookingID, &v.BookingReference, &v.Number, &v.IssuedAt, &v.TotalCents,
		&v.Status, &v.VoidedAt, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice by ID", err)
	}

	lineRows, err := r.db.Query(ctx,
		`SELECT description, amount_cents FROM invoice_lines WHERE invoice_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load invoice lines", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var l queries.InvoiceLineView
		if err := lineRows.Scan(&l.Description, &l.AmountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice line", err)
		}
		v.Lines = append(v.Lines, l)
	}
	if err := lineRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice lines", err)
	}

	return &v, nil
}

const invoiceListSQL = `
SELECT i.id, b.reference, i.number, i.issued_at, i.total_cents, i.status, i.created_at
FROM invoices i
JOIN bookings b ON b.id = i.booking_id
`

func (r *InvoiceReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.InvoiceListItem, error) {
	rows, err := r.db.Query(ctx, invoiceListSQL+`ORDER BY i.created_at DESC, i.id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices first page", err)
	}
	return r.collect(rows)
}

func (r *InvoiceReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.InvoiceListItem, error) {
	rows, err := r.db.Query(ctx,
		invoiceListSQL+`WHERE (i.created_at, i.id) < ($1, $2) ORDER BY i.created_at DESC, i.id DESC LIMIT $3`,
		lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices keyset", err)
	}
	return r.collect(rows)
}

func (r *InvoiceReadStore) collect(rows pgx.Rows) ([]*queries.InvoiceListItem, error) {
	defer rows.Close()

	var items []*queries.InvoiceListItem
	for rows.Next() {
		var item queries.InvoiceListItem
		if err := rows.Scan(&item.ID, &item.BookingReference, &item.Number, &item.IssuedAt, &item.TotalCents, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice list", err)
	}
	return items, nil
}
