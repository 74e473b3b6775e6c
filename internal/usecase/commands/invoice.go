package commands

import (
	"context"
	"encoding/json"
	"time"

	"fleet-console/internal/domain/invoice"
	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrInvoiceNotFound = errs.New("invoice not found")
	ErrInvoiceVoided   = errs.New("invoice already voided")
)

type InvoiceLineParams struct {
	Description string
	AmountCents int64
}

type IssueInvoiceParams struct {
	BookingID uuid.UUID
	IssuedAt  time.Time
	Lines     []InvoiceLineParams
}

type InvoiceCommands interface {
	IssueInvoice(ctx context.Context, params IssueInvoiceParams) (*queries.InvoiceView, error)
	VoidInvoice(ctx context.Context, id uuid.UUID) error
}

type invoiceCommandsImpl struct {
	invoiceRepo  InvoiceRepository
	bookingRepo  BookingRepository
	outboxRepo   OutboxRepository
	invoiceViews queries.InvoiceViewStore
	db           DB
	clock        clock.Clock
}

func NewInvoiceCommands(
	invoiceRepo InvoiceRepository,
	bookingRepo BookingRepository,
	outboxRepo OutboxRepository,
	invoiceViews queries.InvoiceViewStore,
	pool DB,
	clk clock.Clock,
) InvoiceCommands {
	return &invoiceCommandsImpl{
		invoiceRepo:  invoiceRepo,
		bookingRepo:  bookingRepo,
		outboxRepo:   outboxRepo,
		invoiceViews: invoiceViews,
		db:           pool,
		clock:        clk,
	}
}

func (c *invoiceCommandsImpl) IssueInvoice(ctx context.Context, params IssueInvoiceParams) (*queries.InvoiceView, error) {
	b, err := c.bookingRepo.FindByID(ctx, params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	issuedAt := params.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = c.clock.Now()
	}

	lines := make([]invoice.Line, len(params.Lines))
	for i, l := range params.Lines {
		lines[i] = invoice.Line{Description: l.Description, AmountCents: l.AmountCents}
	}

	now := c.clock.Now()
	var created *invoice.Invoice
	err = withTx(ctx, c.db, func(tx pgx.Tx) error {
		seq, err := c.invoiceRepo.NextNumberSeq(ctx, tx, issuedAt.Year())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created, err = invoice.NewInvoice(b.ID(), issuedAt.Year(), seq, issuedAt, lines)
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if err := c.invoiceRepo.Create(ctx, tx, created, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(map[string]any{
			"invoice_id":  created.ID(),
			"booking_id":  b.ID(),
			"number":      created.Number(),
			"total_cents": created.TotalCents(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to marshal invoice payload")
		}
		if err := c.outboxRepo.Enqueue(ctx, tx, JobKindEvent, "invoice.issued", payload, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.invoiceViews.FindByID(ctx, created.ID())
}

func (c *invoiceCommandsImpl) VoidInvoice(ctx context.Context, id uuid.UUID) error {
	inv, err := c.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvoiceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if err := inv.Void(now); err != nil {
		return errs.Mark(err, ErrInvoiceVoided)
	}

	return withTx(ctx, c.db, func(tx pgx.Tx) error {
		if err := c.invoiceRepo.Update(ctx, tx, inv, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
