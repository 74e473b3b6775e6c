//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleet-console/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instant(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestComputeRentalDuration(t *testing.T) {
	cases := []struct {
		name         string
		delivery     time.Time
		collection   time.Time
		tolerance    int
		wantDays     int
		wantTotal    string
		wantDuration string
	}{
		{
			name:         "remainder above tolerance bills extra day",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 6, 9, 0),
			tolerance:    1,
			wantDays:     5,
			wantTotal:    "5 days",
			wantDuration: "4d 23h",
		},
		{
			name:         "minutes never count toward the tolerance",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 6, 10, 30),
			tolerance:    1,
			wantDays:     5,
			wantTotal:    "5 days",
			wantDuration: "5d 0h",
		},
		{
			name:         "remainder within tolerance keeps lower count",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 2, 11, 0),
			tolerance:    2,
			wantDays:     1,
			wantTotal:    "1 day",
			wantDuration: "1d 1h",
		},
		{
			name:         "remainder past tolerance rolls over",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 2, 13, 0),
			tolerance:    2,
			wantDays:     2,
			wantTotal:    "2 days",
			wantDuration: "1d 3h",
		},
		{
			name:         "remainder exactly at tolerance does not roll over",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 3, 12, 0),
			tolerance:    2,
			wantDays:     2,
			wantTotal:    "2 days",
			wantDuration: "2d 2h",
		},
		{
			name:         "one hour past tolerance rolls over",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 3, 13, 0),
			tolerance:    2,
			wantDays:     3,
			wantTotal:    "3 days",
			wantDuration: "2d 3h",
		},
		{
			name:         "zero tolerance falls back to default of one hour",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 2, 11, 0),
			tolerance:    0,
			wantDays:     1,
			wantTotal:    "1 day",
			wantDuration: "1d 1h",
		},
		{
			name:         "collection equal to delivery bills zero days",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 1, 10, 0),
			tolerance:    1,
			wantDays:     0,
			wantTotal:    "0 days",
			wantDuration: "0d 0h",
		},
		{
			name:         "sub-day rental within tolerance",
			delivery:     instant(2024, time.January, 1, 10, 0),
			collection:   instant(2024, time.January, 1, 11, 0),
			tolerance:    1,
			wantDays:     0,
			wantTotal:    "0 days",
			wantDuration: "0d 1h",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.ComputeRentalDuration(tc.delivery, tc.collection, tc.tolerance)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDays, got.TotalDays)
			assert.Equal(t, tc.wantTotal, got.FormattedTotal)
			assert.Equal(t, tc.wantDuration, got.FormattedDuration)
		})
	}
}

func TestComputeRentalDuration_InvalidInput(t *testing.T) {
	cases := []struct {
		name       string
		delivery   time.Time
		collection time.Time
		tolerance  int
		errIs      error
	}{
		{
			name:       "missing delivery instant",
			collection: instant(2024, time.January, 6, 9, 0),
			tolerance:  1,
			errIs:      booking.ErrMissingInstant,
		},
		{
			name:      "missing collection instant",
			delivery:  instant(2024, time.January, 1, 10, 0),
			tolerance: 1,
			errIs:     booking.ErrMissingInstant,
		},
		{
			name:       "collection before delivery",
			delivery:   instant(2024, time.January, 6, 9, 0),
			collection: instant(2024, time.January, 1, 10, 0),
			tolerance:  1,
			errIs:      booking.ErrCollectionBeforeDelivery,
		},
		{
			name:       "tolerance above maximum",
			delivery:   instant(2024, time.January, 1, 10, 0),
			collection: instant(2024, time.January, 6, 9, 0),
			tolerance:  13,
			errIs:      booking.ErrInvalidHourTolerance,
		},
		{
			name:       "negative tolerance",
			delivery:   instant(2024, time.January, 1, 10, 0),
			collection: instant(2024, time.January, 6, 9, 0),
			tolerance:  -1,
			errIs:      booking.ErrInvalidHourTolerance,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.ComputeRentalDuration(tc.delivery, tc.collection, tc.tolerance)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestComputeRentalDuration_Deterministic(t *testing.T) {
	delivery := instant(2024, time.March, 10, 9, 0)
	collection := instant(2024, time.March, 15, 18, 30)

	first, err := booking.ComputeRentalDuration(delivery, collection, 3)
	require.NoError(t, err)
	second, err := booking.ComputeRentalDuration(delivery, collection, 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatTotalDays(t *testing.T) {
	assert.Equal(t, "0 days", booking.FormatTotalDays(0))
	assert.Equal(t, "1 day", booking.FormatTotalDays(1))
	assert.Equal(t, "2 days", booking.FormatTotalDays(2))
	assert.Equal(t, "30 days", booking.FormatTotalDays(30))
}

func TestRentalWindow_Elapsed(t *testing.T) {
	w, err := booking.NewRentalWindow(
		instant(2024, time.January, 1, 10, 0),
		instant(2024, time.January, 2, 12, 30),
		1,
	)
	require.NoError(t, err)
	assert.Equal(t, 26*time.Hour+30*time.Minute, w.Elapsed())
	assert.Equal(t, 1, w.HourTolerance())
}
