//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleet-console/internal/domain/agency"
	"fleet-console/internal/domain/booking"
	"fleet-console/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(instant(2024, time.June, 1, 9, 0)))
}

func mustWindow(t *testing.T, delivery, collection time.Time, tolerance int) booking.RentalWindow {
	t.Helper()
	w, err := booking.NewRentalWindow(delivery, collection, tolerance)
	require.NoError(t, err)
	return w
}

func TestFactory_CreateBooking(t *testing.T) {
	f := newTestFactory()

	customer, err := booking.NewCustomer("Alessandro Ricci", "a.ricci@example.com")
	require.NoError(t, err)
	vehicle, err := booking.NewVehicle("ga123xy", "Ferrari Roma")
	require.NoError(t, err)

	// 4d23h at tolerance 1 bills 5 days
	window := mustWindow(t,
		instant(2024, time.June, 10, 10, 0),
		instant(2024, time.June, 15, 9, 0),
		1,
	)

	b, err := f.CreateBooking(
		booking.NewReference(2024, 17),
		customer,
		vehicle,
		window,
		booking.NewMoney(120_000),
		nil,
		booking.NewNote("airport delivery"),
	)
	require.NoError(t, err)

	assert.Equal(t, "B-2024-0017", b.Reference())
	assert.Equal(t, "GA123XY", b.Vehicle().Plate())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, int64(600_000), b.Total().Cents())
	assert.Nil(t, b.AgencyID())
	assert.Equal(t, int64(0), b.Commission().Cents())
	assert.True(t, b.IsActive())
}

func TestFactory_CreateBooking_WithBroker(t *testing.T) {
	f := newTestFactory()

	customer, err := booking.NewCustomer("Maria Conti", "")
	require.NoError(t, err)
	vehicle, err := booking.NewVehicle("FC456ZK", "Lamborghini Urus")
	require.NoError(t, err)
	broker, err := agency.NewAgency("Riviera Concierge", 15, "bookings@riviera.example")
	require.NoError(t, err)

	// exactly 2 days, no remainder
	window := mustWindow(t,
		instant(2024, time.June, 10, 10, 0),
		instant(2024, time.June, 12, 10, 0),
		1,
	)

	b, err := f.CreateBooking(
		booking.NewReference(2024, 18),
		customer,
		vehicle,
		window,
		booking.NewMoney(200_000),
		broker,
		booking.NewNote(""),
	)
	require.NoError(t, err)

	require.NotNil(t, b.AgencyID())
	assert.Equal(t, broker.ID(), *b.AgencyID())
	assert.Equal(t, int64(400_000), b.Total().Cents())
	assert.Equal(t, int64(60_000), b.Commission().Cents())
}

func TestBooking_StatusTransitions(t *testing.T) {
	f := newTestFactory()

	customer, _ := booking.NewCustomer("Paolo Greco", "")
	vehicle, _ := booking.NewVehicle("XX000XX", "Bentley Continental")
	window := mustWindow(t,
		instant(2024, time.June, 10, 10, 0),
		instant(2024, time.June, 12, 10, 0),
		1,
	)

	b, err := f.CreateBooking("B-2024-0019", customer, vehicle, window, booking.NewMoney(150_000), nil, booking.NewNote(""))
	require.NoError(t, err)

	require.NoError(t, b.MarkDelivered())
	assert.Equal(t, booking.StatusDelivered, b.Status())

	require.NoError(t, b.Close())
	assert.Equal(t, booking.StatusClosed, b.Status())
	assert.False(t, b.IsActive())

	assert.ErrorIs(t, b.Cancel(), booking.ErrBookingClosed)
	assert.ErrorIs(t, b.MarkDelivered(), booking.ErrInvalidTransition)
}

func TestBooking_Cancel(t *testing.T) {
	f := newTestFactory()

	customer, _ := booking.NewCustomer("Paolo Greco", "")
	vehicle, _ := booking.NewVehicle("XX000XX", "Bentley Continental")
	window := mustWindow(t,
		instant(2024, time.June, 10, 10, 0),
		instant(2024, time.June, 12, 10, 0),
		1,
	)

	b, err := f.CreateBooking("B-2024-0020", customer, vehicle, window, booking.NewMoney(150_000), nil, booking.NewNote(""))
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCanceled, b.Status())
	assert.ErrorIs(t, b.Cancel(), booking.ErrBookingCanceled)
}

func TestMoney(t *testing.T) {
	m := booking.NewMoney(10_050)
	assert.Equal(t, 100.50, m.Units())
	assert.Equal(t, int64(30_150), m.MulDays(3).Cents())
	assert.Equal(t, int64(1_507), m.Percent(15).Cents())

	_, err := booking.NewMoneyNonNegative(-1)
	require.Error(t, err)
}
