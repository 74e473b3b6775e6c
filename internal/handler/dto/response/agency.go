package response

import (
	"time"

	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
)

type AgencyResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	CommissionPercent float64   `json:"commissionPercent"`
	ContactEmail      *string   `json:"contactEmail,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromAgencyView(v *queries.AgencyView) *AgencyResponse {
	return &AgencyResponse{
		ID:                v.ID,
		Name:              v.Name,
		CommissionPercent: v.CommissionPercent,
		ContactEmail:      v.ContactEmail,
		IsActive:          v.IsActive,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromAgencyViews(views []*queries.AgencyView) []*AgencyResponse {
	items := make([]*AgencyResponse, 0, len(views))
	for _, v := range views {
		items = append(items, FromAgencyView(v))
	}
	return items
}
