package request

type UpdateSettingsRequest struct {
	HourTolerance         *int   `json:"hour_tolerance,omitempty" binding:"omitempty,gte=1,lte=12"`
	DefaultDailyRateCents *int64 `json:"default_daily_rate_cents,omitempty" binding:"omitempty,gt=0"`
	NotifyBookingCreated  *bool  `json:"notify_booking_created,omitempty"`
	NotifyFineRegistered  *bool  `json:"notify_fine_registered,omitempty"`
}
