package repository

import (
	"context"
	"time"

	"fleet-console/internal/domain/agency"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AgencyRepository struct {
	db db.DBTX
}

func NewAgencyRepository(pool db.DBTX) *AgencyRepository {
	return &AgencyRepository{db: pool}
}

func (r *AgencyRepository) Create(ctx context.Context, a *agency.Agency, now time.Time) error {
	var email *string
	if a.ContactEmail() != "" {
		e := a.ContactEmail()
		email = &e
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO agencies (id, name, commission_percent, contact_email, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		a.ID(), a.Name(), a.CommissionPercent(), pgconv.StringPtrToPgtype(email), a.IsActive(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create agency", err, pgErrKind(err))
	}
	return nil
}

func (r *AgencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*agency.Agency, error) {
	var (
		agencyID          uuid.UUID
		name              string
		commissionPercent float64
		contactEmail      *string
		isActive          bool
		createdAt         time.Time
		updatedAt         time.Time
	)

	err := r.db.QueryRow(ctx,
		`SELECT id, name, commission_percent, contact_email, is_active, created_at, updated_at
		 FROM agencies WHERE id = $1`, id,
	).Scan(&agencyID, &name, &commissionPercent, &contactEmail, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agency not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agency by ID", err)
	}

	email := ""
	if contactEmail != nil {
		email = *contactEmail
	}

	return agency.ReconstructAgency(agencyID, name, commissionPercent, email, isActive, createdAt, updatedAt), nil
}

func (r *AgencyRepository) Update(ctx context.Context, a *agency.Agency, now time.Time) error {
	var email *string
	if a.ContactEmail() != "" {
		e := a.ContactEmail()
		email = &e
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE agencies SET name = $1, commission_percent = $2, contact_email = $3, is_active = $4, updated_at = $5
		 WHERE id = $6`,
		a.Name(), a.CommissionPercent(), pgconv.StringPtrToPgtype(email), a.IsActive(), now, a.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update agency", err, pgErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("agency not found", nil, infra.KindNotFound)
	}
	return nil
}
