package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	Reference         string     `json:"reference"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     *string    `json:"customer_email,omitempty"`
	VehiclePlate      string     `json:"vehicle_plate"`
	VehicleModel      string     `json:"vehicle_model"`
	DeliveryAt        time.Time  `json:"delivery_at"`
	CollectionAt      time.Time  `json:"collection_at"`
	HourTolerance     int        `json:"hour_tolerance"`
	TotalDays         int        `json:"total_days"`
	FormattedTotal    string     `json:"formatted_total"`
	FormattedDuration string     `json:"formatted_duration"`
	Status            string     `json:"status"`
	DailyRateCents    int64      `json:"daily_rate_cents"`
	TotalCents        int64      `json:"total_cents"`
	AgencyID          *uuid.UUID `json:"agency_id,omitempty"`
	AgencyName        *string    `json:"agency_name,omitempty"`
	CommissionCents   int64      `json:"commission_cents"`
	Note              *string    `json:"note,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	Reference    string    `json:"reference"`
	CustomerName string    `json:"customer_name"`
	VehiclePlate string    `json:"vehicle_plate"`
	DeliveryAt   time.Time `json:"delivery_at"`
	CollectionAt time.Time `json:"collection_at"`
	TotalDays    int       `json:"total_days"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paid_at"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type FineView struct {
	ID               uuid.UUID  `json:"id"`
	BookingID        uuid.UUID  `json:"booking_id"`
	BookingReference string     `json:"booking_reference"`
	Number           string     `json:"number"`
	IssuedAt         time.Time  `json:"issued_at"`
	AmountCents      int64      `json:"amount_cents"`
	Status           string     `json:"status"`
	RechargedAt      *time.Time `json:"recharged_at,omitempty"`
	Note             *string    `json:"note,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type InvoiceLineView struct {
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
}

type InvoiceView struct {
	ID               uuid.UUID         `json:"id"`
	BookingID        uuid.UUID         `json:"booking_id"`
	BookingReference string            `json:"booking_reference"`
	Number           string            `json:"number"`
	IssuedAt         time.Time         `json:"issued_at"`
	Lines            []InvoiceLineView `json:"lines"`
	TotalCents       int64             `json:"total_cents"`
	Status           string            `json:"status"`
	VoidedAt         *time.Time        `json:"voided_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type InvoiceListItem struct {
	ID               uuid.UUID `json:"id"`
	BookingReference string    `json:"booking_reference"`
	Number           string    `json:"number"`
	IssuedAt         time.Time `json:"issued_at"`
	TotalCents       int64     `json:"total_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type AgencyView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	CommissionPercent float64   `json:"commission_percent"`
	ContactEmail      *string   `json:"contact_email,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type SettingsView struct {
	HourTolerance         int       `json:"hour_tolerance"`
	DefaultDailyRateCents int64     `json:"default_daily_rate_cents"`
	Currency              string    `json:"currency"`
	NotifyBookingCreated  bool      `json:"notify_booking_created"`
	NotifyFineRegistered  bool      `json:"notify_fine_registered"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// FinancialSummary aggregates everything money-related hanging off one
// booking: what was charged, what fines were passed through, what the
// customer already paid, and what remains outstanding.
type FinancialSummary struct {
	BookingID        uuid.UUID `json:"booking_id"`
	Reference        string    `json:"reference"`
	RentalCents      int64     `json:"rental_cents"`
	FinesCents       int64     `json:"fines_cents"`
	InvoicedCents    int64     `json:"invoiced_cents"`
	PaidCents        int64     `json:"paid_cents"`
	OutstandingCents int64     `json:"outstanding_cents"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
