package commands

import (
	"context"

	"fleet-console/internal/domain/agency"
	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateAgencyParams struct {
	Name              string
	CommissionPercent float64
	ContactEmail      string
}

type UpdateAgencyParams struct {
	ID                uuid.UUID
	Name              *string
	CommissionPercent *float64
	IsActive          *bool
}

type AgencyCommands interface {
	CreateAgency(ctx context.Context, params CreateAgencyParams) (*queries.AgencyView, error)
	UpdateAgency(ctx context.Context, params UpdateAgencyParams) (*queries.AgencyView, error)
}

type agencyCommandsImpl struct {
	agencyRepo  AgencyRepository
	agencyViews queries.AgencyViewStore
	clock       clock.Clock
}

func NewAgencyCommands(agencyRepo AgencyRepository, agencyViews queries.AgencyViewStore, clk clock.Clock) AgencyCommands {
	return &agencyCommandsImpl{
		agencyRepo:  agencyRepo,
		agencyViews: agencyViews,
		clock:       clk,
	}
}

func (c *agencyCommandsImpl) CreateAgency(ctx context.Context, params CreateAgencyParams) (*queries.AgencyView, error) {
	a, err := agency.NewAgency(params.Name, params.CommissionPercent, params.ContactEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := c.agencyRepo.Create(ctx, a, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.agencyViews.FindByID(ctx, a.ID())
}

func (c *agencyCommandsImpl) UpdateAgency(ctx context.Context, params UpdateAgencyParams) (*queries.AgencyView, error) {
	a, err := c.agencyRepo.FindByID(ctx, params.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if params.Name != nil {
		if err := a.Rename(*params.Name); err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
	}
	if params.CommissionPercent != nil {
		if err := a.SetCommissionPercent(*params.CommissionPercent); err != nil {
			return nil, errs.Mark(err, ErrDomainValidationFailed)
		}
	}
	if params.IsActive != nil {
		if *params.IsActive {
			a.Activate()
		} else {
			a.Deactivate()
		}
	}

	if err := c.agencyRepo.Update(ctx, a, c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.agencyViews.FindByID(ctx, a.ID())
}
