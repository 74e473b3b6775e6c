package repository

import (
	"context"
	"time"

	"fleet-console/internal/domain/user"
	"fleet-console/internal/infra"
	"fleet-console/internal/infra/db"
	"fleet-console/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool db.DBTX) *UserRepository {
	return &UserRepository{db: pool}
}

const selectUserSQL = `
SELECT id, email, password_hash, role, last_login, is_active, created_at, updated_at
FROM users WHERE `

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, selectUserSQL+"email = $1", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, selectUserSQL+"id = $1", id)
}

func (r *UserRepository) findOne(ctx context.Context, sql string, arg any) (*user.User, error) {
	var (
		id           uuid.UUID
		emailStr     string
		passwordHash string
		roleStr      string
		lastLogin    *time.Time
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&id, &emailStr, &passwordHash, &roleStr, &lastLogin, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err)
	}

	return user.ReconstructUser(id, email, passwordHash, role, lastLogin, isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2`,
		at, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

// CreatePasswordResetToken stores a single-use reset token; the email
// carrying it is enqueued to the outbox by the caller.
func (r *UserRepository) CreatePasswordResetToken(ctx context.Context, tx db.DBTX, userID uuid.UUID, token uuid.UUID, expiresAt, now time.Time) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO password_reset_tokens (token, user_id, expires_at, created_at)
		 VALUES ($1, $2, $3, $4)`,
		token, userID, expiresAt, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create password reset token", err, pgErrKind(err))
	}
	return nil
}
