package readstore

import (
	"context"
	"time"

	"fleet-console/internal/domain/booking"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

const bookingViewSQL = `
SELECT b.id, b.reference, b.customer_name, b.customer_email, b.vehicle_plate, b.vehicle_model,
	b.delivery_at, b.collection_at, b.hour_tolerance, b.status, b.daily_rate_cents,
	b.total_cents, b.agency_id, a.name, b.commission_cents, b.note, b.created_at, b.updated_at
FROM bookings b
LEFT JOIN agencies a ON a.id = b.agency_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewSQL+"WHERE b.id = $1", id)
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

const bookingListSQL = `
SELECT id, reference, customer_name, vehicle_plate, delivery_at, collection_at,
	hour_tolerance, status, total_cents, created_at
FROM bookings
`

func (r *BookingReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingListSQL+`ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return collectBookingListItems(rows)
}

func (r *BookingReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx,
		bookingListSQL+`WHERE (created_at, id) < ($1, $2) ORDER BY created_at DESC, id DESC LIMIT $3`,
		lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	return collectBookingListItems(rows)
}

func (r *BookingReadStore) ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, booking_id, amount_cents, method, paid_at, note, created_at
		 FROM payments WHERE booking_id = $1 ORDER BY paid_at`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	var items []*queries.PaymentView
	for rows.Next() {
		var p queries.PaymentView
		if err := rows.Scan(&p.ID, &p.BookingID, &p.AmountCents, &p.Method, &p.PaidAt, &p.Note, &p.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		items = append(items, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payments", err)
	}
	return items, nil
}

// FinancialSummary rolls up rental total, non-voided invoices, fines and
// recorded payments for one booking in a single round trip.
func (r *BookingReadStore) FinancialSummary(ctx context.Context, bookingID uuid.UUID) (*queries.FinancialSummary, error) {
	var s queries.FinancialSummary
	err := r.db.QueryRow(ctx,
		`SELECT b.id, b.reference, b.total_cents,
			COALESCE((SELECT SUM(f.amount_cents) FROM fines f WHERE f.booking_id = b.id), 0),
			COALESCE((SELECT SUM(i.total_cents) FROM invoices i WHERE i.booking_id = b.id AND i.status <> 'voided'), 0),
			COALESCE((SELECT SUM(p.amount_cents) FROM payments p WHERE p.booking_id = b.id), 0)
		 FROM bookings b WHERE b.id = $1`,
		bookingID,
	).Scan(&s.BookingID, &s.Reference, &s.RentalCents, &s.FinesCents, &s.InvoicedCents, &s.PaidCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load financial summary", err)
	}

	s.OutstandingCents = s.RentalCents + s.FinesCents - s.PaidCents
	return &s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.Reference, &v.CustomerName, &v.CustomerEmail, &v.VehiclePlate, &v.VehicleModel,
		&v.DeliveryAt, &v.CollectionAt, &v.HourTolerance, &v.Status, &v.DailyRateCents,
		&v.TotalCents, &v.AgencyID, &v.AgencyName, &v.CommissionCents, &v.Note, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Derived duration fields are recomputed on read so views always show
	// the tolerance rule applied to the stored instants.
	if d, derr := booking.ComputeRentalDuration(v.DeliveryAt, v.CollectionAt, v.HourTolerance); derr == nil {
		v.TotalDays = d.TotalDays
		v.FormattedTotal = d.FormattedTotal
		v.FormattedDuration = d.FormattedDuration
	}
	return &v, nil
}

func collectBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item          queries.BookingListItem
			hourTolerance int
		)
		err := rows.Scan(
			&item.ID, &item.Reference, &item.CustomerName, &item.VehiclePlate,
			&item.DeliveryAt, &item.CollectionAt, &hourTolerance, &item.Status,
			&item.TotalCents, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		if d, derr := booking.ComputeRentalDuration(item.DeliveryAt, item.CollectionAt, hourTolerance); derr == nil {
			item.TotalDays = d.TotalDays
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list", err)
	}
	return items, nil
}
