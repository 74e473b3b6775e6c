package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrBookingCanceled   = errors.New("booking is already canceled")
	ErrBookingClosed     = errors.New("booking is already closed")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Booking struct {
	id         uuid.UUID
	reference  string
	customer   Customer
	vehicle    Vehicle
	window     RentalWindow
	status     Status
	dailyRate  Money
	total      Money
	agencyID   *uuid.UUID
	commission Money
	note       Note
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	reference string,
	customer Customer,
	vehicle Vehicle,
	window RentalWindow,
	status Status,
	dailyRate, total Money,
	agencyID *uuid.UUID,
	commission Money,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		reference:  reference,
		customer:   customer,
		vehicle:    vehicle,
		window:     window,
		status:     status,
		dailyRate:  dailyRate,
		total:      total,
		agencyID:   agencyID,
		commission: commission,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed || b.status == StatusDelivered
}

func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCanceled:
		return ErrBookingCanceled
	case StatusClosed:
		return ErrBookingClosed
	}
	b.status = StatusCanceled
	return nil
}

func (b *Booking) MarkDelivered() error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusDelivered
	return nil
}

func (b *Booking) Close() error {
	if b.status != StatusDelivered {
		return ErrInvalidTransition
	}
	b.status = StatusClosed
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Reference() string    { return b.reference }
func (b *Booking) Customer() Customer   { return b.customer }
func (b *Booking) Vehicle() Vehicle     { return b.vehicle }
func (b *Booking) Window() RentalWindow { return b.window }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) DailyRate() Money     { return b.dailyRate }
func (b *Booking) Total() Money         { return b.total }
func (b *Booking) AgencyID() *uuid.UUID { return b.agencyID }
func (b *Booking) Commission() Money    { return b.commission }
func (b *Booking) Note() Note           { return b.note }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
