package queries

import (
	"context"

	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAgencyNotFound = errs.New("agency not found")

type AgencyViewStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AgencyView, error)
	ListAll(ctx context.Context) ([]*AgencyView, error)
}

type AgencyQueries interface {
	GetAgency(ctx context.Context, id uuid.UUID) (*AgencyView, error)
	ListAgencies(ctx context.Context) ([]*AgencyView, error)
}

type agencyQueriesImpl struct {
	views AgencyViewStore
}

func NewAgencyQueries(views AgencyViewStore) AgencyQueries {
	return &agencyQueriesImpl{views: views}
}

func (q *agencyQueriesImpl) GetAgency(ctx context.Context, id uuid.UUID) (*AgencyView, error) {
	v, err := q.views.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return v, nil
}

func (q *agencyQueriesImpl) ListAgencies(ctx context.Context) ([]*AgencyView, error) {
	items, err := q.views.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return items, nil
}
