package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// AuthService defines registration, login and token lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) (model.User, error)
	Login(ctx context.Context, username, password string) (model.TokenPair, error)
	Refresh(ctx context.Context, rawRefresh string) (string, error)
	Logout(ctx context.Context, rawAccess string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "username and password are required"})
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	h.logger.Info("Auth handler: user registered", "username", user.Username, "user_id", user.ID)

	respondJSON(w, http.StatusCreated, messageResponse{Message: "user created successfully"})
}

// Login verifies credentials and returns a fresh access token and a
// refresh token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	pair, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed", "username", req.Username)
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh exchanges a refresh token for a new, non-fresh access token.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	access, err := h.authService.Refresh(r.Context(), bearerToken(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, accessTokenResponse{AccessToken: access})
}

// Logout revokes the presented access token.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context(), bearerToken(r)); err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "successfully logged out"})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
