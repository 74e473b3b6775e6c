package agency

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName       = errors.New("agency name is required")
	ErrInvalidCommission = errors.New("commission percent must be between 0 and 100")
)

// Agency is a broker partner that sources bookings for a commission.
type Agency struct {
	id                uuid.UUID
	name              string
	commissionPercent float64
	contactEmail      string
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewAgency(name string, commissionPercent float64, contactEmail string) (*Agency, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if commissionPercent < 0 || commissionPercent > 100 {
		return nil, ErrInvalidCommission
	}

	return &Agency{
		id:                uuid.New(),
		name:              name,
		commissionPercent: commissionPercent,
		contactEmail:      strings.TrimSpace(contactEmail),
		isActive:          true,
	}, nil
}

func ReconstructAgency(
	id uuid.UUID,
	name string,
	commissionPercent float64,
	contactEmail string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Agency {
	return &Agency{
		id:                id,
		name:              name,
		commissionPercent: commissionPercent,
		contactEmail:      contactEmail,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (a *Agency) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	a.name = name
	return nil
}

func (a *Agency) SetCommissionPercent(pct float64) error {
	if pct < 0 || pct > 100 {
		return ErrInvalidCommission
	}
	a.commissionPercent = pct
	return nil
}

func (a *Agency) Deactivate() {
	a.isActive = false
}

func (a *Agency) Activate() {
	a.isActive = true
}

func (a *Agency) ID() uuid.UUID              { return a.id }
func (a *Agency) Name() string               { return a.name }
func (a *Agency) CommissionPercent() float64 { return a.commissionPercent }
func (a *Agency) ContactEmail() string       { return a.contactEmail }
func (a *Agency) IsActive() bool             { return a.isActive }
func (a *Agency) CreatedAt() time.Time       { return a.createdAt }
func (a *Agency) UpdatedAt() time.Time       { return a.updatedAt }
