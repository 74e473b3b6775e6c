package commands

import (
	"context"
	"encoding/json"
	"time"

	"fleet-console/internal/domain/user"
	"fleet-console/internal/infra"
	"fleet-console/internal/pkg/clock"
	"fleet-console/internal/pkg/errs"
	"fleet-console/internal/pkg/jwt"
	"fleet-console/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrAccountInactive      = errs.New("account is inactive")
)

const passwordResetTTL = time.Hour

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateAccessToken(token string) (uuid.UUID, user.Role, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	outboxRepo OutboxRepository
	jwtService *jwt.Service
	db         DB
	clock      clock.Clock
}

func NewAuthCommands(
	userRepo UserRepository,
	outboxRepo OutboxRepository,
	jwtService *jwt.Service,
	pool DB,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
		jwtService: jwtService,
		db:         pool,
		clock:      clk,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*TokenPair, error) {
	u, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(u.PasswordHash(), rawPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}
	if !u.IsActive() {
		return nil, ErrAccountInactive
	}

	if err := c.userRepo.UpdateLastLogin(ctx, u.ID(), c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.issuePair(u.ID(), u.Role())
}

func (c *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := c.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.Kind != jwt.KindRefresh {
		return nil, ErrAuthenticationFailed
	}

	u, err := c.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !u.IsActive() {
		return nil, ErrAccountInactive
	}

	return c.issuePair(u.ID(), u.Role())
}

// RequestPasswordReset always reports success so callers cannot tell
// which emails have accounts.
func (c *authCommandsImpl) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	token := uuid.New()
	return withTx(ctx, c.db, func(tx pgx.Tx) error {
		if err := c.userRepo.CreatePasswordResetToken(ctx, tx, u.ID(), token, now.Add(passwordResetTTL), now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(map[string]any{
			"user_id":     u.ID(),
			"email":       u.Email().Value(),
			"reset_token": token,
			"expires_at":  now.Add(passwordResetTTL),
		})
		if err != nil {
			return errs.Wrap(err, "failed to marshal reset payload")
		}
		if err := c.outboxRepo.Enqueue(ctx, tx, JobKindEmail, "auth.password_reset", payload, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// ValidateAccessToken accepts only access-kind tokens; refresh tokens
// cannot authenticate API calls.
func (c *authCommandsImpl) ValidateAccessToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := c.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.Kind != jwt.KindAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}
	return claims.UserID, role, nil
}

func (c *authCommandsImpl) issuePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	access, err := c.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign access token")
	}
	refresh, err := c.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
