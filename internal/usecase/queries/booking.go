package queries

import (
	"context"
	"time"

	"fleet-console/internal/domain/booking"
	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidCursor   = errs.New("invalid cursor")
	ErrQueryFailed     = errs.New("query failed")
)

// BookingViewStore is the read-side port implemented by
// internal/infra/readstore.
type BookingViewStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*BookingListItem, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
	FinancialSummary(ctx context.Context, bookingID uuid.UUID) (*FinancialSummary, error)
}

type BookingListPage struct {
	Items      []*BookingListItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type DurationPreview struct {
	TotalDays         int    `json:"total_days"`
	FormattedTotal    string `json:"formatted_total"`
	FormattedDuration string `json:"formatted_duration"`
	HourTolerance     int    `json:"hour_tolerance"`
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, limit int, afterCursor string) (*BookingListPage, error)
	ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
	GetFinancialSummary(ctx context.Context, bookingID uuid.UUID) (*FinancialSummary, error)
	PreviewDuration(ctx context.Context, delivery, collection time.Time, hourTolerance int) (*DurationPreview, error)
}

type bookingQueriesImpl struct {
	views    BookingViewStore
	settings SettingsViewStore
}

func NewBookingQueries(views BookingViewStore, settings SettingsViewStore) BookingQueries {
	return &bookingQueriesImpl{views: views, settings: settings}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.views.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, limit int, afterCursor string) (*BookingListPage, error) {
	size := ValidateLimit(limit)

	var (
		items []*BookingListItem
		err   error
	)
	if afterCursor == "" {
		items, err = q.views.ListFirstPage(ctx, int32(size))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(afterCursor)
		if decodeErr != nil {
			return nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		items, err = q.views.ListKeyset(ctx, lastCreatedAt, lastID, int32(size))
	}
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	page := &BookingListPage{Items: items}
	if len(items) == size {
		last := items[len(items)-1]
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return page, nil
}

func (q *bookingQueriesImpl) ListPayments(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error) {
	items, err := q.views.ListPayments(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) GetFinancialSummary(ctx context.Context, bookingID uuid.UUID) (*FinancialSummary, error) {
	s, err := q.views.FinancialSummary(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return s, nil
}

// PreviewDuration computes billable days for a prospective rental window
// without persisting anything. A zero hourTolerance falls back to the
// operator-configured value.
func (q *bookingQueriesImpl) PreviewDuration(ctx context.Context, delivery, collection time.Time, hourTolerance int) (*DurationPreview, error) {
	tolerance := hourTolerance
	if tolerance == 0 {
		cfg, err := q.settings.Get(ctx)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrQueryFailed)
			}
			tolerance = booking.DefaultHourTolerance
		} else {
			tolerance = cfg.HourTolerance
		}
	}

	result, err := booking.ComputeRentalDuration(delivery, collection, tolerance)
	if err != nil {
		return nil, err
	}

	return &DurationPreview{
		TotalDays:         result.TotalDays,
		FormattedTotal:    result.FormattedTotal,
		FormattedDuration: result.FormattedDuration,
		HourTolerance:     tolerance,
	}, nil
}
