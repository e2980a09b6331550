package context

import (
	"context"

	"github.com/openshelf/openshelf-server/internal/model"
)

type ctxKey int

// identityKey is the context key under which the authenticated identity
// is stored.
const identityKey ctxKey = iota

// Manager stores and retrieves the authenticated identity on a request
// context. It is the only way handlers learn who the caller is.
type Manager struct{}

// NewManager creates a new context Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity set by the authenticate
// middleware. The boolean reports whether the request passed through it.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
