package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// StoreService defines store catalog operations.
type StoreService interface {
	CreateStore(ctx context.Context, name string) (model.Store, error)
	GetStore(ctx context.Context, id uuid.UUID) (model.Store, error)
	ListStores(ctx context.Context) ([]model.Store, error)
	DeleteStore(ctx context.Context, id uuid.UUID) error
}

// Store handles HTTP endpoints for stores.
type Store struct {
	catalog StoreService
	logger  *logger.Logger
}

// NewStore creates a new Store handler.
func NewStore(catalog StoreService, logger *logger.Logger) *Store {
	return &Store{catalog: catalog, logger: logger}
}

type createStoreRequest struct {
	Name string `json:"name"`
}

type storeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toStoreResponse(s model.Store) storeResponse {
	return storeResponse{ID: s.ID, Name: s.Name}
}

// Create creates a store with a globally unique name.
func (h *Store) Create(w http.ResponseWriter, r *http.Request) {
	var req createStoreRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "name is required"})
		return
	}

	store, err := h.catalog.CreateStore(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toStoreResponse(store))
}

// Get returns one store by id.
func (h *Store) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "storeID")
	if err != nil {
		WriteError(w, err)
		return
	}

	store, err := h.catalog.GetStore(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toStoreResponse(store))
}

// List returns all stores.
func (h *Store) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.catalog.ListStores(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]storeResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, toStoreResponse(s))
	}
	respondJSON(w, http.StatusOK, out)
}

// Delete removes a store and everything it owns.
func (h *Store) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "storeID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalog.DeleteStore(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("Store handler: store deleted", "store_id", id)

	respondJSON(w, http.StatusOK, messageResponse{Message: "store deleted"})
}
