package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// TagService defines tag and link operations.
type TagService interface {
	CreateTag(ctx context.Context, storeID uuid.UUID, name string) (model.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (model.Tag, error)
	ListStoreTags(ctx context.Context, storeID uuid.UUID) ([]model.Tag, error)
	ListItemTags(ctx context.Context, itemID uuid.UUID) ([]model.Tag, error)
	ListTagItems(ctx context.Context, tagID uuid.UUID) ([]model.Item, error)
	AttachTag(ctx context.Context, itemID, tagID uuid.UUID) (model.Tag, error)
	DetachTag(ctx context.Context, itemID, tagID uuid.UUID) error
	DeleteTag(ctx context.Context, tagID uuid.UUID) error
}

// Tag handles HTTP endpoints for tags and item-tag links.
type Tag struct {
	catalog TagService
	logger  *logger.Logger
}

// NewTag creates a new Tag handler.
func NewTag(catalog TagService, logger *logger.Logger) *Tag {
	return &Tag{catalog: catalog, logger: logger}
}

type createTagRequest struct {
	Name string `json:"name"`
}

type tagResponse struct {
	ID      uuid.UUID `json:"id"`
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
}

func toTagResponse(t model.Tag) tagResponse {
	return tagResponse{ID: t.ID, StoreID: t.StoreID, Name: t.Name}
}

func toTagResponses(tags []model.Tag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	return out
}

// Create creates a tag in a store.
func (h *Tag) Create(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req createTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}
	if req.Name == "" {
		respondJSON(w, http.StatusBadRequest, messageResponse{Message: "name is required"})
		return
	}

	tag, err := h.catalog.CreateTag(r.Context(), storeID, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toTagResponse(tag))
}

// Get returns one tag by id.
func (h *Tag) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tagID")
	if err != nil {
		WriteError(w, err)
		return
	}

	tag, err := h.catalog.GetTag(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTagResponse(tag))
}

// ListByStore returns the tags of one store.
func (h *Tag) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID, err := pathID(r, "storeID")
	if err != nil {
		WriteError(w, err)
		return
	}

	tags, err := h.catalog.ListStoreTags(r.Context(), storeID)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTagResponses(tags))
}

// ListByItem returns the tags attached to an item.
func (h *Tag) ListByItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		WriteError(w, err)
		return
	}

	tags, err := h.catalog.ListItemTags(r.Context(), itemID)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTagResponses(tags))
}

// ListItems returns the items a tag is attached to.
func (h *Tag) ListItems(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "tagID")
	if err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.catalog.ListTagItems(r.Context(), tagID)
	if err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toItemResponses(items))
}

// Attach links a tag to an item in the same store.
func (h *Tag) Attach(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		WriteError(w, err)
		return
	}
	tagID, err := pathID(r, "tagID")
	if err != nil {
		WriteError(w, err)
		return
	}

	tag, err := h.catalog.AttachTag(r.Context(), itemID, tagID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.logger.Info("Tag handler: tag attached", "item_id", itemID, "tag_id", tagID)

	respondJSON(w, http.StatusCreated, toTagResponse(tag))
}

// Detach removes the link between an item and a tag.
func (h *Tag) Detach(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemID")
	if err != nil {
		WriteError(w, err)
		return
	}
	tagID, err := pathID(r, "tagID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalog.DetachTag(r.Context(), itemID, tagID); err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "tag detached from item"})
}

// Delete removes a tag that is not attached to any item. Success is
// reported with 202 Accepted.
func (h *Tag) Delete(w http.ResponseWriter, r *http.Request) {
	tagID, err := pathID(r, "tagID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalog.DeleteTag(r.Context(), tagID); err != nil {
		WriteError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, messageResponse{Message: "tag deleted"})
}
