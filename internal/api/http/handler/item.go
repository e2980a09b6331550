package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// ItemService defines item catalog operations.
type ItemService interface {
	CreateItem(ctx context.Context, storeID uuid.UUID, name string, price float64) (model.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	ListStoreItems(ctx context.Context, storeID uuid.UUID) ([]model.Item, error)
	UpdateItemPrice(ctx context.Context, id uuid.UUID, price float64) (model.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

// Item handles HTTP endpoints for items.
type Item struct {
	catalog ItemService
	logger  *logger.Logger
}

// NewItem creates a new Item handler.
func NewItem(catalog ItemService, logger *logger.Logger) *Item {
	return &Item{catalog: catalog, logger: logger}
}

type createItemRequest struct {
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
}

type updateItemRequest struct {
	Price float64 `json:"price"`
}

type itemResponse struct {
	ID      uuid.UUID `json:"id"`
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
}

func toItemResponse(i model.Item) itemResponse {
	return itemResponse{ID: i.ID, StoreID: i.StoreID, Name: i.Name, Price: i.Price}
}

func toItemResponses(items []model.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}

// Create creates an item in a store.
func (h *Item) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}
	if req.Name == "" || req.StoreID == uuid.Nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "store_id and name are required"})
		return
	}

	item, err := h.catalog.CreateItem(r.Context(), req.StoreID, req.Name, req.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toItemResponse(item))
}

// Get returns one item by id.
func (h *Item) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemID")
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.catalog.GetItem(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toItemResponse(item))
}

// List returns all items across stores.
func (h *Item) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toItemResponses(items))
}

// ListByStore returns the items owned by one store.
func (h *Item) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.catalog.ListStoreItems(r.Context(), storeID)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toItemResponses(items))
}

// Update sets a new price on an existing item.
func (h *Item) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	item, err := h.catalog.UpdateItemPrice(r.Context(), id, req.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete removes an item.
func (h *Item) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "itemID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalog.DeleteItem(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("Item handler: item deleted", "item_id", id)

	respondJSON(w, http.StatusOK, messageResponse{Message: "item deleted"})
}
