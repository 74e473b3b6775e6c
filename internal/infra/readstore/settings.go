package readstore

import (
	"context"

	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"
	"fleet-console/internal/usecase/queries"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(pool db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: pool}
}

const settingsViewSQL = `
SELECT hour_tolerance, default_daily_rate_cents, currency,
       notify_booking_created, notify_fine_registered, updated_at
FROM operator_settings
WHERE id = 1
`

func (r *SettingsReadStore) Get(ctx context.Context) (*queries.SettingsView, error) {
	var v queries.SettingsView
	err := r.db.QueryRow(ctx, settingsViewSQL).Scan(
		&v.HourTolerance, &v.DefaultDailyRateCents, &v.Currency,
		&v.NotifyBookingCreated, &v.NotifyFineRegistered, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load operator settings", err)
	}
	return &v, nil
}
