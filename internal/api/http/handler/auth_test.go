package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openshelf/openshelf-server/internal/mocks"
	"github.com/openshelf/openshelf-server/internal/model"
	"github.com/openshelf/openshelf-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Register", mock.Anything, "alice", "hunter2").
		Return(model.User{ID: uuid.New(), Username: "alice"}, nil)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"user created successfully"}`, rec.Body.String())
}

func TestAuth_Register_Conflict(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Register", mock.Anything, "alice", "hunter2").
		Return(model.User{}, model.ErrConflict)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuth_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := &mocks.AuthService{}
	lg := testutil.MakeNoopLogger()

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Register")
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, "alice", "hunter2").
		Return(model.TokenPair{AccessToken: "acc", RefreshToken: "ref"}, nil)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"hunter2"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"acc","refresh_token":"ref"}`, rec.Body.String())
}

func TestAuth_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Login", mock.Anything, "alice", "wrong").
		Return(model.TokenPair{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Refresh", mock.Anything, "refresh-token").Return("new-access", nil)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Authorization", "Bearer refresh-token")
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"new-access"}`, rec.Body.String())
}

func TestAuth_Refresh_WrongKind(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Refresh", mock.Anything, "access-token").Return("", model.ErrWrongTokenKind)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Authorization", "Bearer access-token")
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Logout", mock.Anything, "access-token").Return(nil)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer access-token")
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"successfully logged out"}`, rec.Body.String())
}

func TestAuth_Logout_Revoked(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("Logout", mock.Anything, "access-token").Return(model.ErrTokenRevoked)

	h := NewAuth(svc, lg)
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer access-token")
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
