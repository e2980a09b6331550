package service

import (
	"context"
	"fmt"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// Guard is the single entry point for validating bearer tokens against a
// policy. Protected operations learn the caller's identity only from it.
type Guard struct {
	manager  model.TokenManager
	registry model.RevocationRegistry
	logger   *logger.Logger
}

// NewGuard creates a new Guard.
func NewGuard(manager model.TokenManager, registry model.RevocationRegistry, logger *logger.Logger) *Guard {
	return &Guard{manager: manager, registry: registry, logger: logger}
}

// Require validates a raw token against the policy and returns the
// embedded identity. Checks run in a fixed order and short-circuit on the
// first failure: signature/expiry, kind, revocation, freshness, admin.
func (g *Guard) Require(ctx context.Context, raw string, policy model.TokenPolicy) (model.Identity, error) {
	if raw == "" {
		return model.Identity{}, model.ErrInvalidToken
	}

	claims, err := g.manager.Parse(raw)
	if err != nil {
		return model.Identity{}, err
	}

	if claims.Kind != policy.Kind {
		g.logger.Debug("Guard: token kind mismatch",
			"want", string(policy.Kind),
			"got", string(claims.Kind))
		return model.Identity{}, model.ErrWrongTokenKind
	}

	revoked, err := g.registry.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		g.logger.Debug("Guard: token is revoked", "jti", claims.JTI)
		return model.Identity{}, model.ErrTokenRevoked
	}

	if policy.RequireFresh && !claims.Fresh {
		return model.Identity{}, model.ErrTokenStale
	}

	if policy.RequireAdmin && !claims.Admin {
		return model.Identity{}, model.ErrAdminRequired
	}

	return model.Identity{
		UserID:    claims.UserID,
		Admin:     claims.Admin,
		Fresh:     claims.Fresh,
		JTI:       claims.JTI,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
