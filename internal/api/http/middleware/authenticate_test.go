package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/openshelf/openshelf-server/internal/api/http/context"
	"github.com/openshelf/openshelf-server/internal/mocks"
	"github.com/openshelf/openshelf-server/internal/model"
	"github.com/openshelf/openshelf-server/internal/service"
	"github.com/openshelf/openshelf-server/internal/testutil"
)

func newTestAuthenticate(t *testing.T, manager *mocks.TokenManager, registry *mocks.RevocationRegistry) *Authenticate {
	t.Helper()
	lg := testutil.MakeNoopLogger()
	guard := service.NewGuard(manager, registry, lg)
	return NewAuthenticate(guard, httpctx.NewManager(), lg)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	t.Parallel()

	m := newTestAuthenticate(t, &mocks.TokenManager{}, &mocks.RevocationRegistry{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})
	h := m.Require(model.TokenPolicy{Kind: model.TokenKindAccess})(next)

	req := httptest.NewRequest(http.MethodGet, "/store", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	t.Parallel()

	manager := mocks.NewTokenManager(t)
	registry := mocks.NewRevocationRegistry(t)

	claims := model.Claims{
		UserID:    uuid.New(),
		Kind:      model.TokenKindAccess,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	manager.On("Parse", "token").Return(claims, nil)
	registry.On("IsRevoked", mock.Anything, claims.JTI).Return(true, nil)

	m := newTestAuthenticate(t, manager, registry)
	h := m.Require(model.TokenPolicy{Kind: model.TokenKindAccess})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/store", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "revoked")
}

func TestAuthenticate_StaleTokenRejectedByFreshPolicy(t *testing.T) {
	t.Parallel()

	manager := mocks.NewTokenManager(t)
	registry := mocks.NewRevocationRegistry(t)

	claims := model.Claims{
		UserID:    uuid.New(),
		Kind:      model.TokenKindAccess,
		Fresh:     false,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	manager.On("Parse", "token").Return(claims, nil)
	registry.On("IsRevoked", mock.Anything, claims.JTI).Return(false, nil)

	m := newTestAuthenticate(t, manager, registry)
	h := m.Require(model.TokenPolicy{Kind: model.TokenKindAccess, RequireFresh: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/item", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "fresh")
}

func TestAuthenticate_NonAdminRejectedByAdminPolicy(t *testing.T) {
	t.Parallel()

	manager := mocks.NewTokenManager(t)
	registry := mocks.NewRevocationRegistry(t)

	claims := model.Claims{
		UserID:    uuid.New(),
		Kind:      model.TokenKindAccess,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	manager.On("Parse", "token").Return(claims, nil)
	registry.On("IsRevoked", mock.Anything, claims.JTI).Return(false, nil)

	m := newTestAuthenticate(t, manager, registry)
	h := m.Require(model.TokenPolicy{Kind: model.TokenKindAccess, RequireAdmin: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodDelete, "/item/x", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin")
}

func TestAuthenticate_Success_InjectsIdentity(t *testing.T) {
	t.Parallel()

	manager := mocks.NewTokenManager(t)
	registry := mocks.NewRevocationRegistry(t)

	userID := uuid.New()
	claims := model.Claims{
		UserID:    userID,
		Kind:      model.TokenKindAccess,
		Fresh:     true,
		Admin:     true,
		JTI:       uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	manager.On("Parse", "token").Return(claims, nil)
	registry.On("IsRevoked", mock.Anything, claims.JTI).Return(false, nil)

	ctxMgr := httpctx.NewManager()
	m := newTestAuthenticate(t, manager, registry)

	var seen model.Identity
	h := m.Require(model.TokenPolicy{Kind: model.TokenKindAccess})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxMgr.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		seen = identity
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/store", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen.UserID)
	assert.True(t, seen.Admin)
	assert.True(t, seen.Fresh)
}
