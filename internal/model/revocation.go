package model

import (
	"context"
	"time"
)

// RevocationRegistry tracks revoked token identifiers until the token
// would have expired anyway. Revoke is idempotent; IsRevoked must be safe
// under concurrent readers and writers, and a revocation completed on one
// request is immediately visible to all others.
type RevocationRegistry interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
