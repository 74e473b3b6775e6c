package booking

import (
	"fleet-console/internal/domain/agency"
	"fleet-console/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateBooking prices a new booking from its rental window: billable days
// come from the hour-tolerance rule, total = days x daily rate. When the
// booking is brokered the agency commission is computed on the total and
// recorded alongside it, not subtracted from what the customer owes.
func (f *Factory) CreateBooking(
	reference string,
	customer Customer,
	vehicle Vehicle,
	window RentalWindow,
	dailyRate Money,
	broker *agency.Agency,
	note Note,
) (*Booking, error) {
	if dailyRate.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	duration := window.ComputeDuration()
	total := dailyRate.MulDays(duration.TotalDays)

	var agencyID *uuid.UUID
	commission := NewMoney(0)
	if broker != nil {
		id := broker.ID()
		agencyID = &id
		commission = total.Percent(broker.CommissionPercent())
	}

	now := f.Clock.Now()
	return &Booking{
		id:         uuid.New(),
		reference:  reference,
		customer:   customer,
		vehicle:    vehicle,
		window:     window,
		status:     StatusConfirmed,
		dailyRate:  dailyRate,
		total:      total,
		agencyID:   agencyID,
		commission: commission,
		note:       note,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}
