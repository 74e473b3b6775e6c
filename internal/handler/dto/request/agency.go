package request

type CreateAgencyRequest struct {
	Name              string  `json:"name" binding:"required"`
	CommissionPercent float64 `json:"commission_percent" binding:"gte=0,lte=100"`
	ContactEmail      string  `json:"contact_email" binding:"omitempty,email"`
}

type UpdateAgencyRequest struct {
	Name              *string  `json:"name,omitempty"`
	CommissionPercent *float64 `json:"commission_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
	IsActive          *bool    `json:"is_active,omitempty"`
}
