package commands

import (
	"context"

	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/queries"
)

var ErrSettingsNotFound = errs.New("operator settings not found")

type UpdateSettingsParams struct {
	HourTolerance         *int
	DefaultDailyRateCents *int64
	NotifyBookingCreated  *bool
	NotifyFineRegistered  *bool
}

type SettingsCommands interface {
	UpdateSettings(ctx context.Context, params UpdateSettingsParams) (*queries.SettingsView, error)
}

type settingsCommandsImpl struct {
	settingsRepo  SettingsRepository
	settingsViews queries.SettingsViewStore
	clock         clock.Clock
}

func NewSettingsCommands(settingsRepo SettingsRepository, settingsViews queries.SettingsViewStore, clk clock.Clock) SettingsCommands {
	return &settingsCommandsImpl{
		settingsRepo:  settingsRepo,
		settingsViews: settingsViews,
		clock:         clk,
	}
}

func (c *settingsCommandsImpl) UpdateSettings(ctx context.Context, params UpdateSettingsParams) (*queries.SettingsView, error) {
	current, err := c.settingsRepo.Get(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if params.HourTolerance != nil {
		if err := current.SetHourTolerance(*params.HourTolerance); err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
	}
	if params.DefaultDailyRateCents != nil {
		if err := current.SetDefaultDailyRateCents(*params.DefaultDailyRateCents); err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
	}
	if params.NotifyBookingCreated != nil {
		current.SetNotifyBookingCreated(*params.NotifyBookingCreated)
	}
	if params.NotifyFineRegistered != nil {
		current.SetNotifyFineRegistered(*params.NotifyFineRegistered)
	}

	if err := c.settingsRepo.Save(ctx, current, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.settingsViews.Get(ctx)
}
