package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerName   string     `json:"customer_name" binding:"required"`
	CustomerEmail  string     `json:"customer_email" binding:"omitempty,email"`
	VehiclePlate   string     `json:"vehicle_plate" binding:"required,plate"`
	VehicleModel   string     `json:"vehicle_model" binding:"required"`
	DeliveryAt     time.Time  `json:"delivery_at" binding:"required"`
	CollectionAt   time.Time  `json:"collection_at" binding:"required"`
	DailyRateCents *int64     `json:"daily_rate_cents,omitempty" binding:"omitempty,gt=0"`
	AgencyID       *uuid.UUID `json:"agency_id,omitempty"`
	Note           *string    `json:"note,omitempty"`
}

func (r CreateBookingRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type RecordPaymentRequest struct {
	AmountCents int64      `json:"amount_cents" binding:"required,gt=0"`
	Method      string     `json:"method" binding:"required"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	Note        *string    `json:"note,omitempty"`
}

func (r RecordPaymentRequest) GetPaidAt() time.Time {
	if r.PaidAt == nil {
		return time.Time{}
	}
	return *r.PaidAt
}

func (r RecordPaymentRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type PreviewDurationRequest struct {
	DeliveryAt    time.Time `json:"delivery_at" binding:"required"`
	CollectionAt  time.Time `json:"collection_at" binding:"required"`
	HourTolerance int       `json:"hour_tolerance" binding:"omitempty,gte=1,lte=12"`
}
