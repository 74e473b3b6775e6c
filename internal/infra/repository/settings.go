package repository

import (
	"context"
	"time"

	"fleet-console/internal/domain/settings"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"
)

// The operator settings table holds exactly one row (id = 1 enforced by a
// check constraint).
type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(pool db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (*settings.OperatorSettings, error) {
	var (
		hourTolerance         int
		defaultDailyRateCents int64
		currency              string
		notifyBookingCreated  bool
		notifyFineRegistered  bool
		updatedAt             time.Time
	)

	err := r.db.QueryRow(ctx,
		`SELECT hour_tolerance, default_daily_rate_cents, currency,
			notify_booking_created, notify_fine_registered, updated_at
		 FROM operator_settings WHERE id = 1`,
	).Scan(&hourTolerance, &defaultDailyRateCents, &currency, &notifyBookingCreated, &notifyFineRegistered, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("operator settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load operator settings", err)
	}

	return settings.ReconstructOperatorSettings(
		hourTolerance, defaultDailyRateCents, currency,
		notifyBookingCreated, notifyFineRegistered, updatedAt,
	), nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *settings.OperatorSettings, now time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO operator_settings (id, hour_tolerance, default_daily_rate_cents, currency,
			notify_booking_created, notify_fine_registered, updated_at)
		 VALUES (1, $1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
			hour_tolerance = EXCLUDED.hour_tolerance,
			default_daily_rate_cents = EXCLUDED.default_daily_rate_cents,
			currency = EXCLUDED.currency,
			notify_booking_created = EXCLUDED.notify_booking_created,
			notify_fine_registered = EXCLUDED.notify_fine_registered,
			updated_at = EXCLUDED.updated_at`,
		s.HourTolerance(), s.DefaultDailyRateCents(), s.Currency(),
		s.NotifyBookingCreated(), s.NotifyFineRegistered(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save operator settings", err)
	}
	return nil
}
