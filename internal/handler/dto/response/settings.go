package response

import (
	"time"

	"fleet-console/internal/usecase/queries"
)

type SettingsResponse struct {
	HourTolerance         int       `json:"hourTolerance"`
	DefaultDailyRateCents int64     `json:"defaultDailyRateCents"`
	Currency              string    `json:"currency"`
	NotifyBookingCreated  bool      `json:"notifyBookingCreated"`
	NotifyFineRegistered  bool      `json:"notifyFineRegistered"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func FromSettingsView(v *queries.SettingsView) *SettingsResponse {
	return &SettingsResponse{
		HourTolerance:         v.HourTolerance,
		DefaultDailyRateCents: v.DefaultDailyRateCents,
		Currency:              v.Currency,
		NotifyBookingCreated:  v.NotifyBookingCreated,
		NotifyFineRegistered:  v.NotifyFineRegistered,
		UpdatedAt:             v.UpdatedAt,
	}
}
