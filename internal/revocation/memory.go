package revocation

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/openshelf/openshelf-server/internal/model"
)

// Memory is an in-process revocation registry backed by a TTL cache.
// Entries live exactly as long as the revoked token would have; a
// background janitor purges lapsed entries. Safe for concurrent use.
type Memory struct {
	c *gocache.Cache
}

var _ model.RevocationRegistry = (*Memory)(nil)

// NewMemory creates a memory registry. cleanupInterval controls how often
// lapsed entries are purged; correctness does not depend on it, since the
// guard rejects expired tokens before consulting the registry.
func NewMemory(cleanupInterval time.Duration) *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// Revoke marks a jti as revoked until the token's own expiry. Revoking
// the same jti again is a no-op. A jti whose token already expired is not
// stored at all.
func (m *Memory) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	m.c.Set(jti, struct{}{}, ttl)
	return nil
}

// IsRevoked reports whether the jti is currently revoked.
func (m *Memory) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, found := m.c.Get(jti)
	return found, nil
}
