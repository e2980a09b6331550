package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// Auth implements registration, login, token refresh and logout. It
// composes the user store, password hasher, token manager, revocation
// registry and the authorization guard.
type Auth struct {
	users    model.UserStore
	hasher   model.PasswordHasher
	manager  model.TokenManager
	registry model.RevocationRegistry
	guard    *Guard
	logger   *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	users model.UserStore,
	hasher model.PasswordHasher,
	manager model.TokenManager,
	registry model.RevocationRegistry,
	guard *Guard,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:    users,
		hasher:   hasher,
		manager:  manager,
		registry: registry,
		guard:    guard,
		logger:   logger,
	}
}

// Register creates a new non-admin user. The unique index on username is
// the atomic gate; the pre-check only produces a friendlier fast path.
func (a *Auth) Register(ctx context.Context, username, password string) (model.User, error) {
	a.logger.Debug("Auth service: registering user", "username", username)

	existing, err := a.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: username already taken", "username", username)
		return model.User{}, model.ErrConflict
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, model.ErrConflict
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "username", username, "user_id", saved.ID)

	return saved, nil
}

// Login verifies credentials and issues a fresh access token plus a
// refresh token. Unknown username and wrong password are reported
// identically.
func (a *Auth) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: logging in user", "username", username)

	user, err := a.users.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			a.logger.Info("Auth service: password mismatch", "username", username)
			return model.TokenPair{}, model.ErrInvalidCredentials
		}
		return model.TokenPair{}, fmt.Errorf("failed to verify password: %w", err)
	}

	access, err := a.manager.IssueAccess(user.ID, true, user.IsAdmin)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := a.manager.IssueRefresh(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "username", username, "user_id", user.ID)

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The new
// token is never fresh; the admin claim is re-read from the user record
// at this issuance and never afterwards.
func (a *Auth) Refresh(ctx context.Context, rawRefresh string) (string, error) {
	identity, err := a.guard.Require(ctx, rawRefresh, model.TokenPolicy{Kind: model.TokenKindRefresh})
	if err != nil {
		return "", err
	}

	user, err := a.users.GetByID(ctx, identity.UserID)
	if errors.Is(err, model.ErrNotFound) {
		// Subject no longer exists; the token is worthless.
		return "", model.ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by id: %w", err)
	}

	access, err := a.manager.IssueAccess(user.ID, false, user.IsAdmin)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	a.logger.Debug("Auth service: access token refreshed", "user_id", user.ID)

	return access, nil
}

// Logout revokes the presented access token. The token is validated
// first, so logging out twice with the same token fails with
// ErrTokenRevoked the second time.
func (a *Auth) Logout(ctx context.Context, rawAccess string) error {
	identity, err := a.guard.Require(ctx, rawAccess, model.TokenPolicy{Kind: model.TokenKindAccess})
	if err != nil {
		return err
	}

	if err := a.registry.Revoke(ctx, identity.JTI, identity.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	a.logger.Info("Auth service: user logged out", "user_id", identity.UserID, "jti", identity.JTI)

	return nil
}
