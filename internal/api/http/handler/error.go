package handler

import (
	"errors"
	"net/http"

	"github.com/openshelf/openshelf-server/internal/model"
)

// WriteError translates a service error into an HTTP status and the
// uniform message body. Unknown errors are reported opaque.
func WriteError(w http.ResponseWriter, err error) {
	status, message := classify(err)
	respondJSON(w, status, messageResponse{Message: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, model.ErrTokenExpired):
		return http.StatusUnauthorized, "token has expired"
	case errors.Is(err, model.ErrTokenRevoked):
		return http.StatusUnauthorized, "token has been revoked"
	case errors.Is(err, model.ErrTokenStale):
		return http.StatusUnauthorized, "fresh token required"
	case errors.Is(err, model.ErrWrongTokenKind):
		return http.StatusUnauthorized, "wrong token type"
	case errors.Is(err, model.ErrAdminRequired):
		return http.StatusUnauthorized, "admin privilege required"
	case errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, model.ErrAlreadyLinked):
		return http.StatusConflict, "tag already attached to item"
	case errors.Is(err, model.ErrNotLinked):
		return http.StatusBadRequest, "tag is not attached to item"
	case errors.Is(err, model.ErrTagInUse):
		return http.StatusBadRequest, "tag is still attached to one or more items"
	case errors.Is(err, model.ErrInvalidPrice):
		return http.StatusBadRequest, "price must be non-negative"
	case errors.Is(err, model.ErrStoreMismatch):
		return http.StatusBadRequest, "item and tag belong to different stores"
	case errors.Is(err, model.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage temporarily unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
