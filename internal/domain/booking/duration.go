package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMissingInstant           = errors.New("delivery and collection instants are required")
	ErrCollectionBeforeDelivery = errors.New("collection must not be before delivery")
	ErrInvalidHourTolerance     = errors.New("hour tolerance must be between 1 and 12")
)

const (
	MinHourTolerance     = 1
	MaxHourTolerance     = 12
	DefaultHourTolerance = 1
)

// RentalWindow is the delivery/collection instant pair a booking is billed
// over, together with the operator's hour-tolerance policy.
type RentalWindow struct {
	delivery      time.Time
	collection    time.Time
	hourTolerance int
}

// NewRentalWindow validates the instants and the tolerance. A zero
// hourTolerance means "not configured" and falls back to the default.
// A collection strictly before delivery is rejected; an equal pair is
// allowed and bills zero days.
func NewRentalWindow(delivery, collection time.Time, hourTolerance int) (RentalWindow, error) {
	if delivery.IsZero() || collection.IsZero() {
		return RentalWindow{}, ErrMissingInstant
	}
	if hourTolerance == 0 {
		hourTolerance = DefaultHourTolerance
	}
	if hourTolerance < MinHourTolerance || hourTolerance > MaxHourTolerance {
		return RentalWindow{}, ErrInvalidHourTolerance
	}
	if collection.Before(delivery) {
		return RentalWindow{}, ErrCollectionBeforeDelivery
	}

	return RentalWindow{
		delivery:      delivery,
		collection:    collection,
		hourTolerance: hourTolerance,
	}, nil
}

func (w RentalWindow) Delivery() time.Time {
	return w.delivery
}

func (w RentalWindow) Collection() time.Time {
	return w.collection
}

func (w RentalWindow) HourTolerance() int {
	return w.hourTolerance
}

func (w RentalWindow) Elapsed() time.Duration {
	return w.collection.Sub(w.delivery)
}

// DurationResult carries the billable day count alongside a label for the
// exact elapsed span, so the form can show both what will be charged and
// what actually elapsed.
type DurationResult struct {
	TotalDays         int
	FormattedTotal    string
	FormattedDuration string
}

// ComputeDuration decomposes the elapsed span into whole days and a
// remainder of whole hours. A collection that overruns a day boundary by
// no more than the hour tolerance still bills the lower day count; past
// the tolerance a full extra day is charged. Leftover minutes never count
// toward the tolerance comparison.
func (w RentalWindow) ComputeDuration() DurationResult {
	elapsed := w.Elapsed()
	days := int(elapsed / (24 * time.Hour))
	hours := int((elapsed % (24 * time.Hour)) / time.Hour)

	totalDays := days
	if hours > w.hourTolerance {
		totalDays = days + 1
	}

	return DurationResult{
		TotalDays:         totalDays,
		FormattedTotal:    FormatTotalDays(totalDays),
		FormattedDuration: fmt.Sprintf("%dd %dh", days, hours),
	}
}

// ComputeRentalDuration is the plain-function form used by the
// booking-form preview: validate the three inputs, then compute.
func ComputeRentalDuration(delivery, collection time.Time, hourTolerance int) (DurationResult, error) {
	window, err := NewRentalWindow(delivery, collection, hourTolerance)
	if err != nil {
		return DurationResult{}, err
	}
	return window.ComputeDuration(), nil
}

func FormatTotalDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
