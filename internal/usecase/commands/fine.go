package commands

import (
	"context"
	"encoding/json"
	"time"

	"fleet-console/internal/domain/fine"
	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrFineNotFound         = errs.New("fine not found")
	ErrFineAlreadyRecharged = errs.New("fine already recharged")
)

type RegisterFineParams struct {
	BookingID   uuid.UUID
	Number      string
	IssuedAt    time.Time
	AmountCents int64
	Note        string
}

type FineCommands interface {
	RegisterFine(ctx context.Context, params RegisterFineParams) (*queries.FineView, error)
	MarkFineRecharged(ctx context.Context, id uuid.UUID) error
}

type fineCommandsImpl struct {
	fineRepo     FineRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	outboxRepo   OutboxRepository
	fineViews    queries.FineViewStore
	db           DB
	clock        clock.Clock
}

func NewFineCommands(
	fineRepo FineRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	outboxRepo OutboxRepository,
	fineViews queries.FineViewStore,
	pool DB,
	clk clock.Clock,
) FineCommands {
	return &fineCommandsImpl{
		fineRepo:     fineRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		outboxRepo:   outboxRepo,
		fineViews:    fineViews,
		db:           pool,
		clock:        clk,
	}
}

func (c *fineCommandsImpl) RegisterFine(ctx context.Context, params RegisterFineParams) (*queries.FineView, error) {
	b, err := c.bookingRepo.FindByID(ctx, params.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	f, err := fine.NewFine(b.ID(), params.Number, params.IssuedAt, params.AmountCents, params.Note)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	cfg, err := c.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	err = withTx(ctx, c.db, func(tx pgx.Tx) error {
		if err := c.fineRepo.Create(ctx, tx, f, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(map[string]any{
			"fine_id":        f.ID(),
			"booking_id":     b.ID(),
			"reference":      b.Reference(),
			"number":         f.Number(),
			"amount_cents":   f.AmountCents(),
			"customer_name":  b.Customer().Name(),
			"customer_email": b.Customer().Email(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to marshal fine payload")
		}

		if err := c.outboxRepo.Enqueue(ctx, tx, JobKindEvent, "fine.registered", payload, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if cfg.NotifyFineRegistered() && b.Customer().Email() != "" {
			if err := c.outboxRepo.Enqueue(ctx, tx, JobKindEmail, "fine.registered", payload, now); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.fineViews.FindByID(ctx, f.ID())
}

func (c *fineCommandsImpl) MarkFineRecharged(ctx context.Context, id uuid.UUID) error {
	f, err := c.fineRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFineNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if err := f.MarkRecharged(now); err != nil {
		return errs.Mark(err, ErrFineAlreadyRecharged)
	}

	return withTx(ctx, c.db, func(tx pgx.Tx) error {
		if err := c.fineRepo.Update(ctx, tx, f, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
