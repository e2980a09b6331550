package model

import "context"

// ContextManager carries the authenticated identity through a request
// context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
