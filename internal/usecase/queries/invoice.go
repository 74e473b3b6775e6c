package queries

import (
	"context"
	"time"

	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

type InvoiceViewStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*InvoiceListItem, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*InvoiceListItem, error)
}

type InvoiceListPage struct {
	Items      []*InvoiceListItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type InvoiceQueries interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	ListInvoices(ctx context.Context, limit int, afterCursor string) (*InvoiceListPage, error)
}

type invoiceQueriesImpl struct {
	views InvoiceViewStore
}

func NewInvoiceQueries(views InvoiceViewStore) InvoiceQueries {
	return &invoiceQueriesImpl{views: views}
}

func (q *invoiceQueriesImpl) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	v, err := q.views.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return v, nil
}

func (q *invoiceQueriesImpl) ListInvoices(ctx context.Context, limit int, afterCursor string) (*InvoiceListPage, error) {
	size := ValidateLimit(limit)

	var (
		items []*InvoiceListItem
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

	page := &InvoiceListPage{Items: items}
	if len(items) == size {
		last := items[len(items)-1]
		page.NextCursor = EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return page, nil
}
