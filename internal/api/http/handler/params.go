package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/openshelf/openshelf-server/internal/model"
)

// pathID parses a UUID route parameter. A malformed id is reported as a
// missing resource, the same as an unknown one.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, model.ErrNotFound
	}
	return id, nil
}
