package queries

import (
	"context"

	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/errs"
)

var ErrSettingsNotFound = errs.New("operator settings not found")

type SettingsViewStore interface {
	Get(ctx context.Context) (*SettingsView, error)
}

type SettingsQueries interface {
	GetSettings(ctx context.Context) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	views SettingsViewStore
}

func NewSettingsQueries(views SettingsViewStore) SettingsQueries {
	return &settingsQueriesImpl{views: views}
}

func (q *settingsQueriesImpl) GetSettings(ctx context.Context) (*SettingsView, error) {
	v, err := q.views.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return v, nil
}
