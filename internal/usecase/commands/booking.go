package commands

import (
	"context"
	"encoding/json"
	"time"

	"fleet-console/internal/domain/agency"
	"fleet-console/internal/domain/booking"
	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrAgencyNotFound    = errs.New("agency not found")
	ErrInvalidRentalSpan = errs.New("invalid rental span")
	ErrInvalidPayment    = errs.New("invalid payment")

	// Error markers for categorization
	ErrDomainValidationFailed  = errs.New("domain validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	CustomerName   string
	CustomerEmail  string
	VehiclePlate   string
	VehicleModel   string
	DeliveryAt     time.Time
	CollectionAt   time.Time
	DailyRateCents *int64
	AgencyID       *uuid.UUID
	Note           string
}

type RecordPaymentParams struct {
	BookingID   uuid.UUID
	AmountCents int64
	Method      string
	PaidAt      time.Time
	Note        string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
	MarkBookingDelivered(ctx context.Context, id uuid.UUID) error
	CloseBooking(ctx context.Context, id uuid.UUID) error
	RecordPayment(ctx context.Context, params RecordPaymentParams) (uuid.UUID, error)
}

type bookingCommandsImpl struct {
	bookingRepo  BookingRepository
	agencyRepo   AgencyRepository
	settingsRepo SettingsRepository
	outboxRepo   OutboxRepository
	bookingViews queries.BookingViewStore
	factory      *booking.Factory
	db           DB
	clock        clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	agencyRepo AgencyRepository,
	settingsRepo SettingsRepository,
	outboxRepo OutboxRepository,
	bookingViews queries.BookingViewStore,
	factory *booking.Factory,
	pool DB,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:  bookingRepo,
		agencyRepo:   agencyRepo,
		settingsRepo: settingsRepo,
		outboxRepo:   outboxRepo,
		bookingViews: bookingViews,
		factory:      factory,
		db:           pool,
		clock:        clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	cfg, err := c.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	window, err := booking.NewRentalWindow(params.DeliveryAt, params.CollectionAt, cfg.HourTolerance())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRentalSpan)
	}

	customer, err := booking.NewCustomer(params.CustomerName, params.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	vehicle, err := booking.NewVehicle(params.VehiclePlate, params.VehicleModel)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	var broker *agency.Agency
	if params.AgencyID != nil {
		broker, err = c.agencyRepo.FindByID(ctx, *params.AgencyID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrAgencyNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	dailyRate := booking.NewMoney(cfg.DefaultDailyRateCents())
	if params.DailyRateCents != nil {
		dailyRate = booking.NewMoney(*params.DailyRateCents)
	}

	now := c.clock.Now()
	var created *booking.Booking
	err = withTx(ctx, c.db, func(tx pgx.Tx) error {
		seq, err := c.bookingRepo.NextReferenceSeq(ctx, tx, now.Year())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created, err = c.factory.CreateBooking(
			booking.NewReference(now.Year(), seq),
			customer, vehicle, window, dailyRate, broker,
			booking.NewNote(params.Note),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if err := c.bookingRepo.Create(ctx, tx, created); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.enqueueCreatedJobs(ctx, tx, created, cfg.NotifyBookingCreated(), now)
	})
	if err != nil {
		return nil, err
	}

	return c.bookingViews.FindByID(ctx, created.ID())
}

func (c *bookingCommandsImpl) enqueueCreatedJobs(ctx context.Context, tx pgx.Tx, b *booking.Booking, notify bool, now time.Time) error {
	duration := b.Window().ComputeDuration()
	payload, err := json.Marshal(map[string]any{
		"booking_id":     b.ID(),
		"reference":      b.Reference(),
		"customer_name":  b.Customer().Name(),
		"customer_email": b.Customer().Email(),
		"vehicle_plate":  b.Vehicle().Plate(),
		"delivery_at":    b.Window().Delivery(),
		"collection_at":  b.Window().Collection(),
		"total_days":     duration.TotalDays,
		"total_cents":    b.Total().Cents(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking payload")
	}

	if err := c.outboxRepo.Enqueue(ctx, tx, JobKindEvent, "booking.created", payload, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if notify && b.Customer().Email() != "" {
		if err := c.outboxRepo.Enqueue(ctx, tx, JobKindEmail, "booking.created", payload, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, "booking.canceled", (*booking.Booking).Cancel)
}

func (c *bookingCommandsImpl) MarkBookingDelivered(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, "booking.delivered", (*booking.Booking).MarkDelivered)
}

func (c *bookingCommandsImpl) CloseBooking(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, "booking.closed", (*booking.Booking).Close)
}

func (c *bookingCommandsImpl) transition(ctx context.Context, id uuid.UUID, topic string, change func(*booking.Booking) error) error {
	b, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := change(b); err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	now := c.clock.Now()
	return withTx(ctx, c.db, func(tx pgx.Tx) error {
		if err := c.bookingRepo.UpdateStatus(ctx, tx, b, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(map[string]any{
			"booking_id": b.ID(),
			"reference":  b.Reference(),
			"status":     b.Status().String(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to marshal booking payload")
		}
		if err := c.outboxRepo.Enqueue(ctx, tx, JobKindEvent, topic, payload, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) RecordPayment(ctx context.Context, params RecordPaymentParams) (uuid.UUID, error) {
	if params.AmountCents <= 0 || params.Method == "" {
		return uuid.Nil, ErrInvalidPayment
	}

	b, err := c.bookingRepo.FindByID(ctx, params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrBookingNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	paidAt := params.PaidAt
	if paidAt.IsZero() {
		paidAt = c.clock.Now()
	}

	var paymentID uuid.UUID
	err = withTx(ctx, c.db, func(tx pgx.Tx) error {
		paymentID, err = c.bookingRepo.InsertPayment(ctx, tx, b.ID(), booking.Payment{
			AmountCents: params.AmountCents,
			Method:      params.Method,
			PaidAt:      paidAt,
			Note:        params.Note,
		}, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return paymentID, nil
}
