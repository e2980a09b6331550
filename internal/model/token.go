package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes short-lived access tokens from long-lived
// refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the closed claim set embedded in every token. Freshness and
// the admin flag are only ever true on access tokens.
type Claims struct {
	UserID    uuid.UUID
	Kind      TokenKind
	Fresh     bool
	Admin     bool
	JTI       string
	ExpiresAt time.Time
}

// TokenManager issues and validates signed tokens. Parse checks signature
// and expiry only; revocation is the Guard's concern.
type TokenManager interface {
	IssueAccess(userID uuid.UUID, fresh bool, admin bool) (string, error)
	IssueRefresh(userID uuid.UUID) (string, error)
	Parse(token string) (Claims, error)
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenPolicy parameterizes the authorization guard. Kind is mandatory;
// freshness and admin requirements are opt-in.
type TokenPolicy struct {
	Kind         TokenKind
	RequireFresh bool
	RequireAdmin bool
}

// Identity is what the guard hands back on success: the authenticated
// subject plus the claims protected operations may act on.
type Identity struct {
	UserID    uuid.UUID
	Admin     bool
	Fresh     bool
	JTI       string
	ExpiresAt time.Time
}
