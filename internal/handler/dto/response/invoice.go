package response

import (
	"time"

	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceLineResponse struct {
	Description string `json:"description"`
	AmountCents int64  `json:"amountCents"`
}

type InvoiceResponse struct {
	ID               uuid.UUID             `json:"id"`
	BookingID        uuid.UUID             `json:"bookingId"`
	BookingReference string                `json:"bookingReference"`
	Number           string                `json:"number"`
	IssuedAt         time.Time             `json:"issuedAt"`
	Lines            []InvoiceLineResponse `json:"lines"`
	TotalCents       int64                 `json:"totalCents"`
	Status           string                `json:"status"`
	VoidedAt         *time.Time            `json:"voidedAt,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

type InvoiceListItemResponse struct {
	ID               uuid.UUID `json:"id"`
	BookingReference string    `json:"bookingReference"`
	Number           string    `json:"number"`
	IssuedAt         time.Time `json:"issuedAt"`
	TotalCents       int64     `json:"totalCents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type InvoiceListResponse struct {
	Items      []*InvoiceListItemResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, InvoiceLineResponse{
			Description: l.Description,
			AmountCents: l.AmountCents,
		})
	}
	return &InvoiceResponse{
		ID:               v.ID,
		BookingID:        v.BookingID,
		BookingReference: v.BookingReference,
		Number:           v.Number,
		IssuedAt:         v.IssuedAt,
		Lines:            lines,
		TotalCents:       v.TotalCents,
		Status:           v.Status,
		VoidedAt:         v.VoidedAt,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromInvoiceListPage(page *queries.InvoiceListPage) *InvoiceListResponse {
	items := make([]*InvoiceListItemResponse, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, &InvoiceListItemResponse{
			ID:               it.ID,
			BookingReference: it.BookingReference,
			Number:           it.Number,
			IssuedAt:         it.IssuedAt,
			TotalCents:       it.TotalCents,
			Status:           it.Status,
			CreatedAt:        it.CreatedAt,
		})
	}
	return &InvoiceListResponse{Items: items, NextCursor: page.NextCursor}
}
