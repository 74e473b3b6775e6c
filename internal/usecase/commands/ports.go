package commands

import (
	"context"
	"time"

	"fleet-console/internal/domain/agency"
	"fleet-console/internal/domain/booking"
	"fleet-console/internal/domain/fine"
	"fleet-console/internal/domain/invoice"
	"fleet-console/internal/domain/settings"
	"fleet-console/internal/domain/user"
	"fleet-console/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports implemented by internal/infra/repository.

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking, now time.Time) error
	InsertPayment(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, p booking.Payment, now time.Time) (uuid.UUID, error)
	NextReferenceSeq(ctx context.Context, tx db.DBTX, year int) (int64, error)
}

type FineRepository interface {
	Create(ctx context.Context, tx db.DBTX, f *fine.Fine, now time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*fine.Fine, error)
	Update(ctx context.Context, tx db.DBTX, f *fine.Fine, now time.Time) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, inv *invoice.Invoice, now time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	Update(ctx context.Context, tx db.DBTX, inv *invoice.Invoice, now time.Time) error
	NextNumberSeq(ctx context.Context, tx db.DBTX, year int) (int64, error)
}

type AgencyRepository interface {
	Create(ctx context.Context, a *agency.Agency, now time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*agency.Agency, error)
	Update(ctx context.Context, a *agency.Agency, now time.Time) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	CreatePasswordResetToken(ctx context.Context, tx db.DBTX, userID uuid.UUID, token uuid.UUID, expiresAt, now time.Time) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*settings.OperatorSettings, error)
	Save(ctx context.Context, s *settings.OperatorSettings, now time.Time) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
