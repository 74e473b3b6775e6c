package queries

import (
	"context"

	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFineNotFound = errs.New("fine not found")

type FineViewStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FineView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*FineView, error)
	ListByStatus(ctx context.Context, status string, limit int32) ([]*FineView, error)
}

type FineQueries interface {
	GetFine(ctx context.Context, id uuid.UUID) (*FineView, error)
	ListFinesByBooking(ctx context.Context, bookingID uuid.UUID) ([]*FineView, error)
	ListFinesByStatus(ctx context.Context, status string, limit int) ([]*FineView, error)
}

type fineQueriesImpl struct {
	views FineViewStore
}

func NewFineQueries(views FineViewStore) FineQueries {
	return &fineQueriesImpl{views: views}
}

func (q *fineQueriesImpl) GetFine(ctx context.Context, id uuid.UUID) (*FineView, error) {
	v, err := q.views.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFineNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return v, nil
}

func (q *fineQueriesImpl) ListFinesByBooking(ctx context.Context, bookingID uuid.UUID) ([]*FineView, error) {
	items, err := q.views.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}

func (q *fineQueriesImpl) ListFinesByStatus(ctx context.Context, status string, limit int) ([]*FineView, error) {
	items, err := q.views.ListByStatus(ctx, status, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}
