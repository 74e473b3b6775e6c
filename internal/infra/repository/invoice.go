package repository

import (
	"context"
	"time"

	"fleet-console/internal/domain/invoice"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InvoiceRepository struct {
	db db.DBTX
}

func NewInvoiceRepository(pool db.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: pool}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice, now time.Time) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO invoices (id, booking_id, number, issued_at, total_cents, status, voided_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		inv.ID(), inv.BookingID(), inv.Number(), inv.IssuedAt(), inv.TotalCents(),
		inv.Status().String(), pgconv.TimePtrToPgtype(inv.VoidedAt()), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err, pgErrKind(err))
	}

	for i, line := range inv.Lines() {
		_, err := tx.Exec(ctx,
			`INSERT INTO invoice_lines (invoice_id, position, description, amount_cents)
			 VALUES ($1, $2, $3, $4)`,
			inv.ID(), i, line.Description, line.AmountCents,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create invoice line", err, pgErrKind(err))
		}
	}
	return nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var (
		invoiceID  uuid.UUID
		bookingID  uuid.UUID
		number     string
		issuedAt   time.Time
		totalCents int64
		status     string
		voidedAt   *time.Time
		createdAt  time.Time
		updatedAt  time.Time
	)

	err := r.db.QueryRow(ctx,
		`SELECT id, booking_id, number, issued_at, total_cents, status, voided_at, created_at, updated_at
		 FROM invoices WHERE id = $1`, id,
	).Scan(&invoiceID, &bookingID, &number, &issuedAt, &totalCents, &status, &voidedAt, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice by ID", err)
	}

	lines, err := r.findLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return invoice.ReconstructInvoice(
		invoiceID, bookingID, number, issuedAt, lines, totalCents,
		invoice.Status(status), voidedAt, createdAt, updatedAt,
	), nil
}

func (r *InvoiceRepository) findLines(ctx context.Context, invoiceID uuid.UUID) ([]invoice.Line, error) {
	rows, err := r.db.Query(ctx,
		`SELECT description, amount_cents FROM invoice_lines WHERE invoice_id = $1 ORDER BY position`,
		invoiceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load invoice lines", err)
	}
	defer rows.Close()

	var lines []invoice.Line
	for rows.Next() {
		var l invoice.Line
		if err := rows.Scan(&l.Description, &l.AmountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice lines", err)
	}
	return lines, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, tx db.DBTX, inv *invoice.Invoice, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE invoices SET status = $1, voided_at = $2, updated_at = $3 WHERE id = $4`,
		inv.Status().String(), pgconv.TimePtrToPgtype(inv.VoidedAt()), now, inv.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

// NextNumberSeq advances the per-year invoice counter inside the issuing
// transaction. Voided invoices keep their number, the sequence only moves
// forward.
func (r *InvoiceRepository) NextNumberSeq(ctx context.Context, tx db.DBTX, year int) (int64, error) {
	var seq int64
	err := tx.QueryRow(ctx,
		`INSERT INTO invoice_sequences (year, last_seq) VALUES ($1, 1)
		 ON CONFLICT (year) DO UPDATE SET last_seq = invoice_sequences.last_seq + 1
		 RETURNING last_seq`,
		year,
	).Scan(&seq)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to advance invoice sequence", err)
	}
	return seq, nil
}
