//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleet-console/internal/domain/booking"
	"fleet-console/internal/domain/fine"
	"fleet-console/internal/domain/settings"
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

type stubFineRepo struct {
	created *fine.Fine
	found   *fine.Fine
	updated *fine.Fine
}

func (s *stubFineRepo) Create(_ context.Context, _ db.DBTX, f *fine.Fine, _ time.Time) error {
	s.created = f
	return nil
}

func (s *stubFineRepo) FindByID(_ context.Context, id uuid.UUID) (*fine.Fine, error) {
	if s.found == nil || s.found.ID() != id {
		return nil, infra.WrapRepoErr("fine not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return s.found, nil
}

func (s *stubFineRepo) Update(_ context.Context, _ db.DBTX, f *fine.Fine, _ time.Time) error {
	s.updated = f
	return nil
}

type stubFineViews struct{}

func (stubFineViews) FindByID(_ context.Context, id uuid.UUID) (*queries.FineView, error) {
	return &queries.FineView{ID: id}, nil
}

func (stubFineViews) ListByBooking(context.Context, uuid.UUID) ([]*queries.FineView, error) {
	return nil, nil
}

func (stubFineViews) ListByStatus(context.Context, string, int32) ([]*queries.FineView, error) {
	return nil, nil
}

func makeBooking(clk clock.Clock, email string) (*booking.Booking, error) {
	window, err := booking.NewRentalWindow(
		time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 3, 9, 0, 0, 0, time.UTC),
		1,
	)
	if err != nil {
		return nil, err
	}
	customer, err := booking.NewCustomer("Ada Lovelace", email)
	if err != nil {
		return nil, err
	}
	vehicle, err := booking.NewVehicle("GA123BC", "Huracan Evo")
	if err != nil {
		return nil, err
	}
	return booking.NewFactory(clk).CreateBooking(
		"B-2026-0001", customer, vehicle, window,
		booking.NewMoney(100_000), nil, booking.NewNote(""),
	)
}

type FineCommandsTestSuite struct {
	suite.Suite
	clock        *clock.MockClock
	fineRepo     *stubFineRepo
	bookingRepo  *stubBookingRepo
	settingsRepo *stubSettingsRepo
	outboxRepo   *stubOutboxRepo
	cmds         commands.FineCommands
}

func TestFineCommandsSuite(t *testing.T) {
	suite.Run(t, new(FineCommandsTestSuite))
}

func (s *FineCommandsTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC))

	cfg, err := settings.NewOperatorSettings(2, 120_000, "EUR")
	s.Require().NoError(err)

	s.fineRepo = &stubFineRepo{}
	s.bookingRepo = &stubBookingRepo{nextSeq: 1}
	s.settingsRepo = &stubSettingsRepo{current: cfg}
	s.outboxRepo = &stubOutboxRepo{}

	s.cmds = commands.NewFineCommands(
		s.fineRepo,
		s.bookingRepo,
		s.settingsRepo,
		s.outboxRepo,
		stubFineViews{},
		stubDB{},
		s.clock,
	)
}

func (s *FineCommandsTestSuite) TestRegisterFineEnqueuesEventAndEmail() {
	b, err := makeBooking(s.clock, "ada@example.com")
	s.Require().NoError(err)
	s.bookingRepo.found = b

	view, err := s.cmds.RegisterFine(context.Background(), commands.RegisterFineParams{
		BookingID:   b.ID(),
		Number:      "V-2026-0042",
		IssuedAt:    time.Date(2026, 7, 2, 14, 30, 0, 0, time.UTC),
		AmountCents: 18_500,
	})
	s.Require().NoError(err)
	s.Require().NotNil(view)

	s.Require().NotNil(s.fineRepo.created)
	s.Equal(fine.StatusPending, s.fineRepo.created.Status())
	s.Equal([]enqueuedJob{
		{Kind: commands.JobKindEvent, Topic: "fine.registered"},
		{Kind: commands.JobKindEmail, Topic: "fine.registered"},
	}, s.outboxRepo.jobs)
}

func (s *FineCommandsTestSuite) TestRegisterFineRejectsUnknownBooking() {
	_, err := s.cmds.RegisterFine(context.Background(), commands.RegisterFineParams{
		BookingID:   uuid.New(),
		Number:      "V-2026-0042",
		IssuedAt:    time.Date(2026, 7, 2, 14, 30, 0, 0, time.UTC),
		AmountCents: 18_500,
	})
	s.Require().ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *FineCommandsTestSuite) TestMarkFineRecharged() {
	f, err := fine.NewFine(uuid.New(), "V-2026-0042", time.Date(2026, 7, 2, 14, 30, 0, 0, time.UTC), 18_500, "")
	s.Require().NoError(err)
	s.fineRepo.found = f

	s.Require().NoError(s.cmds.MarkFineRecharged(context.Background(), f.ID()))
	s.Require().NotNil(s.fineRepo.updated)
	s.Equal(fine.StatusRecharged, s.fineRepo.updated.Status())
}

func (s *FineCommandsTestSuite) TestMarkFineRechargedTwiceConflicts() {
	f, err := fine.NewFine(uuid.New(), "V-2026-0042", time.Date(2026, 7, 2, 14, 30, 0, 0, time.UTC), 18_500, "")
	s.Require().NoError(err)
	s.Require().NoError(f.MarkRecharged(s.clock.Now()))
	s.fineRepo.found = f

	err = s.cmds.MarkFineRecharged(context.Background(), f.ID())
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrFineAlreadyRecharged))
	s.Nil(s.fineRepo.updated)
}
