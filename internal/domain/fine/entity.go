package fine

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber    = errors.New("fine number is required")
	ErrInvalidAmount    = errors.New("fine amount must be positive")
	ErrAlreadyRecharged = errors.New("fine already recharged to customer")
)

// Fine is a traffic fine received for a vehicle while it was out on a
// booking. The operator pays the authority and recharges the customer.
type Fine struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	number      string
	issuedAt    time.Time
	amountCents int64
	status      Status
	rechargedAt *time.Time
	note        string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewFine(bookingID uuid.UUID, number string, issuedAt time.Time, amountCents int64, note string) (*Fine, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidNumber
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Fine{
		id:          uuid.New(),
		bookingID:   bookingID,
		number:      number,
		issuedAt:    issuedAt,
		amountCents: amountCents,
		status:      StatusPending,
		note:        strings.TrimSpace(note),
	}, nil
}

func ReconstructFine(
	id, bookingID uuid.UUID,
	number string,
	issuedAt time.Time,
	amountCents int64,
	status Status,
	rechargedAt *time.Time,
	note string,
	createdAt, updatedAt time.Time,
) *Fine {
	return &Fine{
		id:          id,
		bookingID:   bookingID,
		number:      number,
		issuedAt:    issuedAt,
		amountCents: amountCents,
		status:      status,
		rechargedAt: rechargedAt,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// MarkRecharged records that the fine amount was billed back to the
// customer. Idempotent failures surface as ErrAlreadyRecharged.
func (f *Fine) MarkRecharged(at time.Time) error {
	if f.status == StatusRecharged {
		return ErrAlreadyRecharged
	}
	f.status = StatusRecharged
	f.rechargedAt = &at
	return nil
}

func (f *Fine) MarkOverdue() {
	if f.status == StatusPending {
		f.status = StatusOverdue
	}
}

func (f *Fine) ID() uuid.UUID           { return f.id }
func (f *Fine) BookingID() uuid.UUID    { return f.bookingID }
func (f *Fine) Number() string          { return f.number }
func (f *Fine) IssuedAt() time.Time     { return f.issuedAt }
func (f *Fine) AmountCents() int64      { return f.amountCents }
func (f *Fine) Status() Status          { return f.status }
func (f *Fine) RechargedAt() *time.Time { return f.rechargedAt }
func (f *Fine) Note() string            { return f.note }
func (f *Fine) CreatedAt() time.Time    { return f.createdAt }
func (f *Fine) UpdatedAt() time.Time    { return f.updatedAt }
