package response

import (
	"time"

	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID  `json:"id"`
	Reference         string     `json:"reference"`
	CustomerName      string     `json:"customerName"`
	CustomerEmail     *string    `json:"customerEmail,omitempty"`
	VehiclePlate      string     `json:"vehiclePlate"`
	VehicleModel      string     `json:"vehicleModel"`
	DeliveryAt        time.Time  `json:"deliveryAt"`
	CollectionAt      time.Time  `json:"collectionAt"`
	HourTolerance     int        `json:"hourTolerance"`
	TotalDays         int        `json:"totalDays"`
	FormattedTotal    string     `json:"formattedTotal"`
	FormattedDuration string     `json:"formattedDuration"`
	Status            string     `json:"status"`
	DailyRateCents    int64      `json:"dailyRateCents"`
	TotalCents        int64      `json:"totalCents"`
	AgencyID          *uuid.UUID `json:"agencyId,omitempty"`
	AgencyName        *string    `json:"agencyName,omitempty"`
	CommissionCents   int64      `json:"commissionCents"`
	Note              *string    `json:"note,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Reference    string    `json:"reference"`
	CustomerName string    `json:"customerName"`
	VehiclePlate string    `json:"vehiclePlate"`
	DeliveryAt   time.Time `json:"deliveryAt"`
	CollectionAt time.Time `json:"collectionAt"`
	TotalDays    int       `json:"totalDays"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"totalCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"bookingId"`
	AmountCents int64     `json:"amountCents"`
	Method      string    `json:"method"`
	PaidAt      time.Time `json:"paidAt"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DurationPreviewResponse struct {
	TotalDays         int    `json:"totalDays"`
	FormattedTotal    string `json:"formattedTotal"`
	FormattedDuration string `json:"formattedDuration"`
	HourTolerance     int    `json:"hourTolerance"`
}

type FinancialSummaryResponse struct {
	BookingID        uuid.UUID `json:"bookingId"`
	Reference        string    `json:"reference"`
	RentalCents      int64     `json:"rentalCents"`
	FinesCents       int64     `json:"finesCents"`
	InvoicedCents    int64     `json:"invoicedCents"`
	PaidCents        int64     `json:"paidCents"`
	OutstandingCents int64     `json:"outstandingCents"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                v.ID,
		Reference:         v.Reference,
		CustomerName:      v.CustomerName,
		CustomerEmail:     v.CustomerEmail,
		VehiclePlate:      v.VehiclePlate,
		VehicleModel:      v.VehicleModel,
		DeliveryAt:        v.DeliveryAt,
		CollectionAt:      v.CollectionAt,
		HourTolerance:     v.HourTolerance,
		TotalDays:         v.TotalDays,
		FormattedTotal:    v.FormattedTotal,
		FormattedDuration: v.FormattedDuration,
		Status:            v.Status,
		DailyRateCents:    v.DailyRateCents,
		TotalCents:        v.TotalCents,
		AgencyID:          v.AgencyID,
		AgencyName:        v.AgencyName,
		CommissionCents:   v.CommissionCents,
		Note:              v.Note,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromBookingListPage(page *queries.BookingListPage) *BookingListResponse {
	items := make([]*BookingListItemResponse, 0, len(page.Items))
	for _, it := range page.Items {
		items = append(items, &BookingListItemResponse{
			ID:           it.ID,
			Reference:    it.Reference,
			CustomerName: it.CustomerName,
			VehiclePlate: it.VehiclePlate,
			DeliveryAt:   it.DeliveryAt,
			CollectionAt: it.CollectionAt,
			TotalDays:    it.TotalDays,
			Status:       it.Status,
			TotalCents:   it.TotalCents,
			CreatedAt:    it.CreatedAt,
		})
	}
	return &BookingListResponse{Items: items, NextCursor: page.NextCursor}
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	items := make([]*PaymentResponse, 0, len(views))
	for _, v := range views {
		items = append(items, &PaymentResponse{
			ID:          v.ID,
			BookingID:   v.BookingID,
			AmountCents: v.AmountCents,
			Method:      v.Method,
			PaidAt:      v.PaidAt,
			Note:        v.Note,
			CreatedAt:   v.CreatedAt,
		})
	}
	return items
}

func FromDurationPreview(v *queries.DurationPreview) *DurationPreviewResponse {
	return &DurationPreviewResponse{
		TotalDays:         v.TotalDays,
		FormattedTotal:    v.FormattedTotal,
		FormattedDuration: v.FormattedDuration,
		HourTolerance:     v.HourTolerance,
	}
}

func FromFinancialSummary(v *queries.FinancialSummary) *FinancialSummaryResponse {
	return &FinancialSummaryResponse{
		BookingID:        v.BookingID,
		Reference:        v.Reference,
		RentalCents:      v.RentalCents,
		FinesCents:       v.FinesCents,
		InvoicedCents:    v.InvoicedCents,
		PaidCents:        v.PaidCents,
		OutstandingCents: v.OutstandingCents,
	}
}
