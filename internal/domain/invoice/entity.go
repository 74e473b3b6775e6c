package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines       = errors.New("invoice requires at least one line")
	ErrInvalidLine   = errors.New("invoice line is invalid")
	ErrAlreadyVoided = errors.New("invoice already voided")
)

type Line struct {
	Description string
	AmountCents int64
}

// Invoice is an accounting document issued against a booking: rental days,
// extras, recharged fines. Numbers run in one sequence per year.
type Invoice struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	number     string
	issuedAt   time.Time
	lines      []Line
	totalCents int64
	status     Status
	voidedAt   *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewInvoice(bookingID uuid.UUID, year int, seq int64, issuedAt time.Time, lines []Line) (*Invoice, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var total int64
	for _, l := range lines {
		if strings.TrimSpace(l.Description) == "" || l.AmountCents < 0 {
			return nil, ErrInvalidLine
		}
		total += l.AmountCents
	}

	return &Invoice{
		id:         uuid.New(),
		bookingID:  bookingID,
		number:     NewNumber(year, seq),
		issuedAt:   issuedAt,
		lines:      lines,
		totalCents: total,
		status:     StatusIssued,
	}, nil
}

func ReconstructInvoice(
	id, bookingID uuid.UUID,
	number string,
	issuedAt time.Time,
	lines []Line,
	totalCents int64,
	status Status,
	voidedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Invoice {
	return &Invoice{
		id:         id,
		bookingID:  bookingID,
		number:     number,
		issuedAt:   issuedAt,
		lines:      lines,
		totalCents: totalCents,
		status:     status,
		voidedAt:   voidedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Void cancels the document. Voided invoices keep their number; the
// sequence never reuses it.
func (i *Invoice) Void(at time.Time) error {
	if i.status == StatusVoided {
		return ErrAlreadyVoided
	}
	i.status = StatusVoided
	i.voidedAt = &at
	return nil
}

func (i *Invoice) ID() uuid.UUID        { return i.id }
func (i *Invoice) BookingID() uuid.UUID { return i.bookingID }
func (i *Invoice) Number() string       { return i.number }
func (i *Invoice) IssuedAt() time.Time  { return i.issuedAt }
func (i *Invoice) Lines() []Line        { return i.lines }
func (i *Invoice) TotalCents() int64    { return i.totalCents }
func (i *Invoice) Status() Status       { return i.status }
func (i *Invoice) VoidedAt() *time.Time { return i.voidedAt }
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time { return i.updatedAt }

func NewNumber(year int, seq int64) string {
	return fmt.Sprintf("%d/%05d", year, seq)
}
