package readstore

import (
	"context"

	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"
	"fleet-console/internal/usecase/queries"

	"github.com/google/uuid"
)

type AgencyReadStore struct {
	db db.DBTX
}

func NewAgencyReadStore(pool db.DBTX) *AgencyReadStore {
	return &AgencyReadStore{db: pool}
}

const agencyViewSQL = `
SELECT id, name, commission_percent, contact_email, is_active, created_at, updated_at
FROM agencies
`

func (r *AgencyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AgencyView, error) {
	var v queries.AgencyView
	err := r.db.QueryRow(ctx, agencyViewSQL+"WHERE id = $1", id).Scan(
		&v.ID, &v.Name, &v.CommissionPercent, &v.ContactEmail, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agency not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agency by ID", err)
	}
	return &v, nil
}

func (r *AgencyReadStore) ListAll(ctx context.Context) ([]*queries.AgencyView, error) {
	rows, err := r.db.Query(ctx, agencyViewSQL+"ORDER BY name")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agencies", err)
	}
	defer rows.Close()

	var items []*queries.AgencyView
	for rows.Next() {
		var v queries.AgencyView
		if err := rows.Scan(&v.ID, &v.Name, &v.CommissionPercent, &v.ContactEmail, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan agency", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate agencies", err)
	}
	return items, nil
}
