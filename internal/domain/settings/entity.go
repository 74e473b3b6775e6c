package settings

import (
	"errors"
	"time"

	"fleet-console/internal/domain/booking"
)

var (
	ErrInvalidTolerance = errors.New("hour tolerance out of range")
	ErrInvalidDailyRate = errors.New("default daily rate must be positive")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter ISO code")
)

// OperatorSettings is the operator-wide configuration row the console
// edits: the hour tolerance feeding day-count previews, the default daily
// rate used when a booking has no per-vehicle rate, and notification
// toggles for the outbox dispatcher.
type OperatorSettings struct {
	hourTolerance         int
	defaultDailyRateCents int64
	currency              string
	notifyBookingCreated  bool
	notifyFineRegistered  bool
	updatedAt             time.Time
}

func NewOperatorSettings(hourTolerance int, defaultDailyRateCents int64, currency string) (*OperatorSettings, error) {
	if hourTolerance < booking.MinHourTolerance || hourTolerance > booking.MaxHourTolerance {
		return nil, ErrInvalidTolerance
	}
	if defaultDailyRateCents <= 0 {
		return nil, ErrInvalidDailyRate
	}
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}

	return &OperatorSettings{
		hourTolerance:         hourTolerance,
		defaultDailyRateCents: defaultDailyRateCents,
		currency:              currency,
		notifyBookingCreated:  true,
		notifyFineRegistered:  true,
	}, nil
}

func ReconstructOperatorSettings(
	hourTolerance int,
	defaultDailyRateCents int64,
	currency string,
	notifyBookingCreated, notifyFineRegistered bool,
	updatedAt time.Time,
) *OperatorSettings {
	return &OperatorSettings{
		hourTolerance:         hourTolerance,
		defaultDailyRateCents: defaultDailyRateCents,
		currency:              currency,
		notifyBookingCreated:  notifyBookingCreated,
		notifyFineRegistered:  notifyFineRegistered,
		updatedAt:             updatedAt,
	}
}

func (s *OperatorSettings) SetHourTolerance(hours int) error {
	if hours < booking.MinHourTolerance || hours > booking.MaxHourTolerance {
		return ErrInvalidTolerance
	}
	s.hourTolerance = hours
	return nil
}

func (s *OperatorSettings) SetDefaultDailyRateCents(cents int64) error {
	if cents <= 0 {
		return ErrInvalidDailyRate
	}
	s.defaultDailyRateCents = cents
	return nil
}

func (s *OperatorSettings) SetNotifyBookingCreated(on bool) { s.notifyBookingCreated = on }
func (s *OperatorSettings) SetNotifyFineRegistered(on bool) { s.notifyFineRegistered = on }

func (s *OperatorSettings) HourTolerance() int           { return s.hourTolerance }
func (s *OperatorSettings) DefaultDailyRateCents() int64 { return s.defaultDailyRateCents }
func (s *OperatorSettings) Currency() string             { return s.currency }
func (s *OperatorSettings) NotifyBookingCreated() bool   { return s.notifyBookingCreated }
func (s *OperatorSettings) NotifyFineRegistered() bool   { return s.notifyFineRegistered }
func (s *OperatorSettings) UpdatedAt() time.Time         { return s.updatedAt }
