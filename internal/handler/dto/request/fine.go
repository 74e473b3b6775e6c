package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterFineRequest struct {
	BookingID   uuid.UUID `json:"booking_id" binding:"required"`
	Number      string    `json:"number" binding:"required"`
	IssuedAt    time.Time `json:"issued_at" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	Note        *string   `json:"note,omitempty"`
}

func (r RegisterFineRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}
