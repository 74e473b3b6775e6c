package response

import (
	"time"

	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
)

type FineResponse struct {
	ID               uuid.UUID  `json:"id"`
	BookingID        uuid.UUID  `json:"bookingId"`
	BookingReference string     `json:"bookingReference"`
	Number           string     `json:"number"`
	IssuedAt         time.Time  `json:"issuedAt"`
	AmountCents      int64      `json:"amountCents"`
	Status           string     `json:"status"`
	RechargedAt      *time.Time `json:"rechargedAt,omitempty"`
	Note             *string    `json:"note,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromFineView(v *queries.FineView) *FineResponse {
	return &FineResponse{
		ID:               v.ID,
		BookingID:        v.BookingID,
		BookingReference: v.BookingReference,
		Number:           v.Number,
		IssuedAt:         v.IssuedAt,
		AmountCents:      v.AmountCents,
		Status:           v.Status,
		RechargedAt:      v.RechargedAt,
		Note:             v.Note,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromFineViews(views []*queries.FineView) []*FineResponse {
	items := make([]*FineResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromFineView(v))
	}
	return items
}
