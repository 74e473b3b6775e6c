package request

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceLineRequest struct {
	Description string `json:"description" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
}

type IssueInvoiceRequest struct {
	BookingID uuid.UUID            `json:"booking_id" binding:"required"`
	IssuedAt  *time.Time           `json:"issued_at,omitempty"`
	Lines     []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}
