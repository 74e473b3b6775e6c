package repository

import (
	"context"
	"errors"
	"time"

	"fleet-console/internal/domain/booking"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, reference, customer_name, customer_email, vehicle_plate, vehicle_model,
	delivery_at, collection_at, hour_tolerance, status, daily_rate_cents,
	total_cents, agency_id, commission_cents, note, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	var email *string
	if b.Customer().Email() != "" {
		e := b.Customer().Email()
		email = &e
	}
	var note *string
	if !b.Note().IsEmpty() {
		n := b.Note().String()
		note = &n
	}

	_, err := tx.Exec(ctx, insertBookingSQL,
		b.ID(),
		b.Reference(),
		b.Customer().Name(),
		pgconv.StringPtrToPgtype(email),
		b.Vehicle().Plate(),
		b.Vehicle().Model(),
		b.Window().Delivery(),
		b.Window().Collection(),
		b.Window().HourTolerance(),
		b.Status().String(),
		b.DailyRate().Cents(),
		b.Total().Cents(),
		pgconv.UUIDPtrToPgtype(b.AgencyID()),
		b.Commission().Cents(),
		pgconv.StringPtrToPgtype(note),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err, pgErrKind(err))
	}
	return nil
}

const selectBookingSQL = `
SELECT id, reference, customer_name, customer_email, vehicle_plate, vehicle_model,
	delivery_at, collection_at, hour_tolerance, status, daily_rate_cents,
	total_cents, agency_id, commission_cents, note, created_at, updated_at
FROM bookings WHERE id = $1`

// FindByID rehydrates the domain entity for command-side state changes.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, selectBookingSQL, id)
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3`,
		b.Status().String(), now, b.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) InsertPayment(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, p booking.Payment, now time.Time) (uuid.UUID, error) {
	id := uuid.New()
	var note *string
	if p.Note != "" {
		note = &p.Note
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO payments (id, booking_id, amount_cents, method, paid_at, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, bookingID, p.AmountCents, p.Method, p.PaidAt, pgconv.StringPtrToPgtype(note), now,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert payment", err, pgErrKind(err))
	}
	return id, nil
}

// NextReferenceSeq advances the per-year booking counter. Runs inside the
// create transaction so concurrent creates cannot share a number.
func (r *BookingRepository) NextReferenceSeq(ctx context.Context, tx db.DBTX, year int) (int64, error) {
	var seq int64
	err := tx.QueryRow(ctx,
		`INSERT INTO booking_sequences (year, last_seq) VALUES ($1, 1)
		 ON CONFLICT (year) DO UPDATE SET last_seq = booking_sequences.last_seq + 1
		 RETURNING last_seq`,
		year,
	).Scan(&seq)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to advance booking sequence", err)
	}
	return seq, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id              uuid.UUID
		reference       string
		customerName    string
		customerEmail   *string
		vehiclePlate    string
		vehicleModel    string
		deliveryAt      time.Time
		collectionAt    time.Time
		hourTolerance   int
		status          string
		dailyRateCents  int64
		totalCents      int64
		agencyID        *uuid.UUID
		commissionCents int64
		note            *string
		createdAt       time.Time
		updatedAt       time.Time
	)

	err := row.Scan(
		&id, &reference, &customerName, &customerEmail, &vehiclePlate, &vehicleModel,
		&deliveryAt, &collectionAt, &hourTolerance, &status, &dailyRateCents,
		&totalCents, &agencyID, &commissionCents, &note, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	email := ""
	if customerEmail != nil {
		email = *customerEmail
	}
	customer, err := booking.NewCustomer(customerName, email)
	if err != nil {
		return nil, err
	}
	vehicle, err := booking.NewVehicle(vehiclePlate, vehicleModel)
	if err != nil {
		return nil, err
	}
	window, err := booking.NewRentalWindow(deliveryAt, collectionAt, hourTolerance)
	if err != nil {
		return nil, err
	}

	noteVal := ""
	if note != nil {
		noteVal = *note
	}

	return booking.ReconstructBooking(
		id, reference, customer, vehicle, window,
		booking.Status(status),
		booking.NewMoney(dailyRateCents), booking.NewMoney(totalCents),
		agencyID, booking.NewMoney(commissionCents),
		booking.NewNote(noteVal),
		createdAt, updatedAt,
	), nil
}

// pgErrKind maps Postgres constraint violations onto repository kinds.
func pgErrKind(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.KindDuplicateKey
		case "23503":
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
