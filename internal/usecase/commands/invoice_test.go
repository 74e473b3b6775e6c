//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleet-console/internal/domain/invoice"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/commands"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

type stubInvoiceRepo struct {
	created *invoice.Invoice
	found   *invoice.Invoice
	updated *invoice.Invoice
	nextSeq int64
}

func (s *stubInvoiceRepo) Create(_ context.Context, _ db.DBTX, inv *invoice.Invoice, _ time.Time) error {
	s.created = inv
	return nil
}

func (s *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	if s.found == nil || s.found.ID() != id {
		return nil, infra.WrapRepoErr("invoice not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return s.found, nil
}

func (s *stubInvoiceRepo) Update(_ context.Context, _ db.DBTX, inv *invoice.Invoice, _ time.Time) error {
	s.updated = inv
	return nil
}

func (s *stubInvoiceRepo) NextNumberSeq(_ context.Context, _ db.DBTX, _ int) (int64, error) {
	return s.nextSeq, nil
}

type stubInvoiceViews struct{}

func (stubInvoiceViews) FindByID(_ context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	return &queries.InvoiceView{ID: id}, nil
}

func (stubInvoiceViews) ListFirstPage(context.Context, int32) ([]*queries.InvoiceListItem, error) {
	return nil, nil
}

func (stubInvoiceViews) ListKeyset(context.Context, time.Time, uuid.UUID, int32) ([]*queries.InvoiceListItem, error) {
	return nil, nil
}

type InvoiceCommandsTestSuite struct {
	suite.Suite
	clock       *clock.MockClock
	invoiceRepo *stubInvoiceRepo
	bookingRepo *stubBookingRepo
	outboxRepo  *stubOutboxRepo
	cmds        commands.InvoiceCommands
}

func TestInvoiceCommandsSuite(t *testing.T) {
	suite.Run(t, new(InvoiceCommandsTestSuite))
}

func (s *InvoiceCommandsTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC))

	s.invoiceRepo = &stubInvoiceRepo{nextSeq: 3}
	s.bookingRepo = &stubBookingRepo{nextSeq: 1}
	s.outboxRepo = &stubOutboxRepo{}

	s.cmds = commands.NewInvoiceCommands(
		s.invoiceRepo,
		s.bookingRepo,
		s.outboxRepo,
		stubInvoiceViews{},
		stubDB{},
		s.clock,
	)
}

func (s *InvoiceCommandsTestSuite) TestIssueInvoiceNumbersAndTotals() {
	b, err := makeBooking(s.clock, "ada@example.com")
	s.Require().NoError(err)
	s.bookingRepo.found = b

	view, err := s.cmds.IssueInvoice(context.Background(), commands.IssueInvoiceParams{
		BookingID: b.ID(),
		Lines: []commands.InvoiceLineParams{
			{Description: "Rental, 2 days", AmountCents: 200_000},
			{Description: "Fine recharge V-2026-0042", AmountCents: 18_500},
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(view)

	created := s.invoiceRepo.created
	s.Require().NotNil(created)
	s.Equal("2026/00003", created.Number())
	s.Equal(int64(218_500), created.TotalCents())
	s.Equal(invoice.StatusIssued, created.Status())
	s.Equal([]enqueuedJob{{Kind: commands.JobKindEvent, Topic: "invoice.issued"}}, s.outboxRepo.jobs)
}

func (s *InvoiceCommandsTestSuite) TestIssueInvoiceRejectsEmptyLines() {
	b, err := makeBooking(s.clock, "")
	s.Require().NoError(err)
	s.bookingRepo.found = b

	_, err = s.cmds.IssueInvoice(context.Background(), commands.IssueInvoiceParams{
		BookingID: b.ID(),
	})
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrDomainValidationFailed))
	s.True(errs.Is(err, invoice.ErrNoLines))
	s.Nil(s.invoiceRepo.created)
}

func (s *InvoiceCommandsTestSuite) TestVoidInvoice() {
	b, err := makeBooking(s.clock, "")
	s.Require().NoError(err)

	inv, err := invoice.NewInvoice(b.ID(), 2026, 3, s.clock.Now(), []invoice.Line{
		{Description: "Rental, 2 days", AmountCents: 200_000},
	})
	s.Require().NoError(err)
	s.invoiceRepo.found = inv

	s.Require().NoError(s.cmds.VoidInvoice(context.Background(), inv.ID()))
	s.Require().NotNil(s.invoiceRepo.updated)
	s.Equal(invoice.StatusVoided, s.invoiceRepo.updated.Status())
}

func (s *InvoiceCommandsTestSuite) TestVoidInvoiceTwiceConflicts() {
	b, err := makeBooking(s.clock, "")
	s.Require().NoError(err)

	inv, err := invoice.NewInvoice(b.ID(), 2026, 3, s.clock.Now(), []invoice.Line{
		{Description: "Rental, 2 days", AmountCents: 200_000},
	})
	s.Require().NoError(err)
	s.Require().NoError(inv.Void(s.clock.Now()))
	s.invoiceRepo.found = inv

	err = s.cmds.VoidInvoice(context.Background(), inv.ID())
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrInvoiceVoided))
	s.Nil(s.invoiceRepo.updated)
}
