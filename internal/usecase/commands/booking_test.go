//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"fleet-console/internal/domain/agency"
	"fleet-console/internal/domain/booking"
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

// ---- stubs -----------------------------------------------------------------

type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type stubDB struct{}

func (stubDB) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type stubBookingRepo struct {
	created *booking.Booking
	found   *booking.Booking
	nextSeq int64
	updated *booking.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) error {
	s.created = b
	return nil
}

func (s *stubBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if s.found == nil || s.found.ID() != id {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return s.found, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, b *booking.Booking, _ time.Time) error {
	s.updated = b
	return nil
}

func (s *stubBookingRepo) InsertPayment(_ context.Context, _ db.DBTX, _ uuid.UUID, _ booking.Payment, _ time.Time) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (s *stubBookingRepo) NextReferenceSeq(_ context.Context, _ db.DBTX, _ int) (int64, error) {
	return s.nextSeq, nil
}

type stubAgencyRepo struct {
	agencies map[uuid.UUID]*agency.Agency
}

func (s *stubAgencyRepo) Create(_ context.Context, a *agency.Agency, _ time.Time) error {
	s.agencies[a.ID()] = a
	return nil
}

func (s *stubAgencyRepo) FindByID(_ context.Context, id uuid.UUID) (*agency.Agency, error) {
	a, ok := s.agencies[id]
	if !ok {
		return nil, infra.WrapRepoErr("agency not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return a, nil
}

func (s *stubAgencyRepo) Update(_ context.Context, a *agency.Agency, _ time.Time) error {
	s.agencies[a.ID()] = a
	return nil
}

type stubSettingsRepo struct {
	current *settings.OperatorSettings
}

func (s *stubSettingsRepo) Get(context.Context) (*settings.OperatorSettings, error) {
	return s.current, nil
}

func (s *stubSettingsRepo) Save(_ context.Context, cfg *settings.OperatorSettings, _ time.Time) error {
	s.current = cfg
	return nil
}

type enqueuedJob struct {
	Kind  string
	Topic string
}

type stubOutboxRepo struct {
	jobs []enqueuedJob
}

func (s *stubOutboxRepo) Enqueue(_ context.Context, _ db.DBTX, kind, topic string, _ []byte, _ time.Time) error {
	s.jobs = append(s.jobs, enqueuedJob{Kind: kind, Topic: topic})
	return nil
}

type stubBookingViews struct {
	view *queries.BookingView
}

func (s *stubBookingViews) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v := *s.view
	v.ID = id
	return &v, nil
}

func (s *stubBookingViews) ListFirstPage(context.Context, int32) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (s *stubBookingViews) ListKeyset(context.Context, time.Time, uuid.UUID, int32) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (s *stubBookingViews) ListPayments(context.Context, uuid.UUID) ([]*queries.PaymentView, error) {
	return nil, nil
}

func (s *stubBookingViews) FinancialSummary(context.Context, uuid.UUID) (*queries.FinancialSummary, error) {
	return nil, nil
}

// ---- suite -----------------------------------------------------------------

type BookingCommandsTestSuite struct {
	suite.Suite
	clock        *clock.MockClock
	bookingRepo  *stubBookingRepo
	agencyRepo   *stubAgencyRepo
	settingsRepo *stubSettingsRepo
	outboxRepo   *stubOutboxRepo
	views        *stubBookingViews
	cmds         commands.BookingCommands
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC))

	cfg, err := settings.NewOperatorSettings(2, 120_000, "EUR")
	s.Require().NoError(err)

	s.bookingRepo = &stubBookingRepo{nextSeq: 7}
	s.agencyRepo = &stubAgencyRepo{agencies: map[uuid.UUID]*agency.Agency{}}
	s.settingsRepo = &stubSettingsRepo{current: cfg}
	s.outboxRepo = &stubOutboxRepo{}
	s.views = &stubBookingViews{view: &queries.BookingView{Reference: "B-2026-0007"}}

	s.cmds = commands.NewBookingCommands(
		s.bookingRepo,
		s.agencyRepo,
		s.settingsRepo,
		s.outboxRepo,
		s.views,
		booking.NewFactory(s.clock),
		stubDB{},
		s.clock,
	)
}

func (s *BookingCommandsTestSuite) TestCreateBookingPricesWithToleranceRule() {
	// 5 days and 3 hours elapsed with a 2h tolerance bills 6 days.
	view, err := s.cmds.CreateBooking(context.Background(), commands.CreateBookingParams{
		CustomerName:  "Ada Lovelace",
		CustomerEmail: "ada@example.com",
		VehiclePlate:  "ga123bc",
		VehicleModel:  "Huracan Evo",
		DeliveryAt:    time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		CollectionAt:  time.Date(2026, 7, 6, 12, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Require().NotNil(view)

	created := s.bookingRepo.created
	s.Require().NotNil(created)
	s.Equal("B-2026-0007", created.Reference())
	s.Equal(int64(720_000), created.Total().Cents())
	s.Equal("GA123BC", created.Vehicle().Plate())
	s.Equal(booking.StatusConfirmed, created.Status())

	s.Equal([]enqueuedJob{
		{Kind: commands.JobKindEvent, Topic: "booking.created"},
		{Kind: commands.JobKindEmail, Topic: "booking.created"},
	}, s.outboxRepo.jobs)
}

func (s *BookingCommandsTestSuite) TestCreateBookingSkipsEmailWithoutAddress() {
	_, err := s.cmds.CreateBooking(context.Background(), commands.CreateBookingParams{
		CustomerName: "Ada Lovelace",
		VehiclePlate: "GA123BC",
		VehicleModel: "Huracan Evo",
		DeliveryAt:   time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		CollectionAt: time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)

	s.Equal([]enqueuedJob{
		{Kind: commands.JobKindEvent, Topic: "booking.created"},
	}, s.outboxRepo.jobs)
}

func (s *BookingCommandsTestSuite) TestCreateBookingComputesBrokerCommission() {
	broker, err := agency.NewAgency("Concierge Milano", 15, "desk@example.com")
	s.Require().NoError(err)
	s.agencyRepo.agencies[broker.ID()] = broker

	rate := int64(100_000)
	brokerID := broker.ID()
	_, err = s.cmds.CreateBooking(context.Background(), commands.CreateBookingParams{
		CustomerName:   "Ada Lovelace",
		VehiclePlate:   "GA123BC",
		VehicleModel:   "Huracan Evo",
		DeliveryAt:     time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		CollectionAt:   time.Date(2026, 7, 5, 9, 0, 0, 0, time.UTC),
		DailyRateCents: &rate,
		AgencyID:       &brokerID,
	})
	s.Require().NoError(err)

	created := s.bookingRepo.created
	s.Require().NotNil(created)
	s.Equal(int64(400_000), created.Total().Cents())
	s.Equal(int64(60_000), created.Commission().Cents())
}

func (s *BookingCommandsTestSuite) TestCreateBookingRejectsUnknownAgency() {
	unknown := uuid.New()
	_, err := s.cmds.CreateBooking(context.Background(), commands.CreateBookingParams{
		CustomerName: "Ada Lovelace",
		VehiclePlate: "GA123BC",
		VehicleModel: "Huracan Evo",
		DeliveryAt:   time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		CollectionAt: time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC),
		AgencyID:     &unknown,
	})
	s.Require().ErrorIs(err, commands.ErrAgencyNotFound)
}

func (s *BookingCommandsTestSuite) TestCreateBookingRejectsInvertedWindow() {
	_, err := s.cmds.CreateBooking(context.Background(), commands.CreateBookingParams{
		CustomerName: "Ada Lovelace",
		VehiclePlate: "GA123BC",
		VehicleModel: "Huracan Evo",
		DeliveryAt:   time.Date(2026, 7, 5, 9, 0, 0, 0, time.UTC),
		CollectionAt: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	})
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrInvalidRentalSpan))
	s.True(errs.Is(err, booking.ErrCollectionBeforeDelivery))
}

func (s *BookingCommandsTestSuite) TestCancelBookingEnqueuesEvent() {
	window, err := booking.NewRentalWindow(
		time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 3, 9, 0, 0, 0, time.UTC),
		1,
	)
	s.Require().NoError(err)
	customer, err := booking.NewCustomer("Ada Lovelace", "")
	s.Require().NoError(err)
	vehicle, err := booking.NewVehicle("GA123BC", "Huracan Evo")
	s.Require().NoError(err)

	b, err := booking.NewFactory(s.clock).CreateBooking(
		"B-2026-0001", customer, vehicle, window,
		booking.NewMoney(100_000), nil, booking.NewNote(""),
	)
	s.Require().NoError(err)
	s.bookingRepo.found = b

	s.Require().NoError(s.cmds.CancelBooking(context.Background(), b.ID()))
	s.Equal(booking.StatusCanceled, s.bookingRepo.updated.Status())
	s.Equal([]enqueuedJob{{Kind: commands.JobKindEvent, Topic: "booking.canceled"}}, s.outboxRepo.jobs)
}

func (s *BookingCommandsTestSuite) TestRecordPaymentRejectsNonPositiveAmount() {
	_, err := s.cmds.RecordPayment(context.Background(), commands.RecordPaymentParams{
		BookingID:   uuid.New(),
		AmountCents: 0,
		Method:      "wire",
	})
	s.Require().ErrorIs(err, commands.ErrInvalidPayment)
}
