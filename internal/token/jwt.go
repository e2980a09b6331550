package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/openshelf/openshelf-server/internal/model"
)

// Claims represents the JWT payload: subject, token kind, freshness and
// admin flags, plus the registered claims carrying jti and expiry.
type Claims struct {
	jwt.RegisteredClaims
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"typ"`
	Fresh     bool      `json:"fresh,omitempty"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and
// per-kind lifetimes.
func NewJWT(secretKey string, accessTTL, refreshTTL time.Duration) *JWT {
	return &JWT{secretKey: secretKey, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

var _ model.TokenManager = (*JWT)(nil)

// IssueAccess creates a short-lived access token. Fresh is true only when
// the caller has just verified full credentials; a refresh-derived access
// token is never fresh.
func (j *JWT) IssueAccess(userID uuid.UUID, fresh bool, admin bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
		UserID:    userID,
		TokenType: string(model.TokenKindAccess),
		Fresh:     fresh,
		IsAdmin:   admin,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// IssueRefresh creates a long-lived refresh token. It carries only the
// subject identity: no freshness, no elevated claims.
func (j *JWT) IssueRefresh(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.refreshTTL)),
		},
		UserID:    userID,
		TokenType: string(model.TokenKindRefresh),
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return tokenString, nil
}

// Parse verifies signature and expiry and extracts the typed claim set.
// Revocation status is not consulted here.
func (j *JWT) Parse(tokenString string) (model.Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Claims{}, model.ErrTokenExpired
		}
		return model.Claims{}, model.ErrInvalidToken
	}
	if !token.Valid {
		return model.Claims{}, model.ErrInvalidToken
	}

	kind := model.TokenKind(claims.TokenType)
	if kind != model.TokenKindAccess && kind != model.TokenKindRefresh {
		return model.Claims{}, model.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil || claims.ID == "" {
		return model.Claims{}, model.ErrInvalidToken
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return model.Claims{
		UserID:    claims.UserID,
		Kind:      kind,
		Fresh:     claims.Fresh,
		Admin:     claims.IsAdmin,
		JTI:       claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}
