package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// Catalog enforces uniqueness and referential integrity over stores,
// items, tags and their links. Every mutation is a single atomic unit at
// the repository boundary; the constraints there are the gate, not any
// check performed here.
type Catalog struct {
	stores model.StoreRepository
	items  model.ItemRepository
	tags   model.TagRepository
	logger *logger.Logger
}

// NewCatalog creates a new Catalog service.
func NewCatalog(
	stores model.StoreRepository,
	items model.ItemRepository,
	tags model.TagRepository,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{stores: stores, items: items, tags: tags, logger: logger}
}

// CreateStore creates a store with a globally unique name. Under
// concurrent identical requests exactly one succeeds; the rest observe
// ErrConflict.
func (c *Catalog) CreateStore(ctx context.Context, name string) (model.Store, error) {
	store := model.Store{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	saved, err := c.stores.Create(ctx, store)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			c.logger.Info("Catalog service: store name taken", "name", name)
			return model.Store{}, model.ErrConflict
		}
		return model.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	c.logger.Info("Catalog service: store created", "store_id", saved.ID, "name", name)

	return saved, nil
}

// GetStore returns a store by id.
func (c *Catalog) GetStore(ctx context.Context, id uuid.UUID) (model.Store, error) {
	return c.stores.GetByID(ctx, id)
}

// ListStores returns all stores.
func (c *Catalog) ListStores(ctx context.Context) ([]model.Store, error) {
	return c.stores.List(ctx)
}

// DeleteStore removes a store and, through cascade, its items, its tags
// and every link row they participated in.
func (c *Catalog) DeleteStore(ctx context.Context, id uuid.UUID) error {
	if err := c.stores.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete store: %w", err)
	}

	c.logger.Info("Catalog service: store deleted", "store_id", id)

	return nil
}

// CreateItem creates an item in a store. The (store, name) pair must be
// unique and the price non-negative.
func (c *Catalog) CreateItem(ctx context.Context, storeID uuid.UUID, name string, price float64) (model.Item, error) {
	if price < 0 {
		return model.Item{}, model.ErrInvalidPrice
	}

	now := time.Now()
	item := model.Item{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := c.items.Create(ctx, item)
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrNotFound) {
			return model.Item{}, err
		}
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	c.logger.Info("Catalog service: item created",
		"item_id", saved.ID,
		"store_id", storeID,
		"name", name)

	return saved, nil
}

// GetItem returns an item by id.
func (c *Catalog) GetItem(ctx context.Context, id uuid.UUID) (model.Item, error) {
	return c.items.GetByID(ctx, id)
}

// ListItems returns all items across stores.
func (c *Catalog) ListItems(ctx context.Context) ([]model.Item, error) {
	return c.items.List(ctx)
}

// ListStoreItems returns the items owned by one store.
func (c *Catalog) ListStoreItems(ctx context.Context, storeID uuid.UUID) ([]model.Item, error) {
	if _, err := c.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return c.items.ListByStore(ctx, storeID)
}

// UpdateItemPrice sets a new price on an existing item.
func (c *Catalog) UpdateItemPrice(ctx context.Context, id uuid.UUID, price float64) (model.Item, error) {
	if price < 0 {
		return model.Item{}, model.ErrInvalidPrice
	}
	return c.items.UpdatePrice(ctx, id, price)
}

// DeleteItem removes an item; its link rows go with it.
func (c *Catalog) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := c.items.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	c.logger.Info("Catalog service: item deleted", "item_id", id)

	return nil
}

// CreateTag creates a tag in a store. The (store, name) pair must be
// unique.
func (c *Catalog) CreateTag(ctx context.Context, storeID uuid.UUID, name string) (model.Tag, error) {
	tag := model.Tag{
		ID:        uuid.New(),
		StoreID:   storeID,
		Name:      name,
		CreatedAt: time.Now(),
	}

	saved, err := c.tags.Create(ctx, tag)
	if err != nil {
		if errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrNotFound) {
			return model.Tag{}, err
		}
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}

	c.logger.Info("Catalog service: tag created",
		"tag_id", saved.ID,
		"store_id", storeID,
		"name", name)

	return saved, nil
}

// GetTag returns a tag by id.
func (c *Catalog) GetTag(ctx context.Context, id uuid.UUID) (model.Tag, error) {
	return c.tags.GetByID(ctx, id)
}

// ListStoreTags returns the tags of one store.
func (c *Catalog) ListStoreTags(ctx context.Context, storeID uuid.UUID) ([]model.Tag, error) {
	if _, err := c.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return c.tags.ListByStore(ctx, storeID)
}

// ListItemTags returns the tags attached to an item as a materialized
// slice.
func (c *Catalog) ListItemTags(ctx context.Context, itemID uuid.UUID) ([]model.Tag, error) {
	if _, err := c.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return c.tags.ListByItem(ctx, itemID)
}

// ListTagItems returns the items a tag is attached to as a materialized
// slice.
func (c *Catalog) ListTagItems(ctx context.Context, tagID uuid.UUID) ([]model.Item, error) {
	if _, err := c.tags.GetByID(ctx, tagID); err != nil {
		return nil, err
	}
	return c.items.ListByTag(ctx, tagID)
}

// AttachTag links a tag to an item and returns the tag. Missing endpoints
// fail with ErrNotFound, a duplicate link with ErrAlreadyLinked, a
// cross-store pair with ErrStoreMismatch; the insert itself is the
// atomic gate for all three.
func (c *Catalog) AttachTag(ctx context.Context, itemID, tagID uuid.UUID) (model.Tag, error) {
	if err := c.tags.Link(ctx, itemID, tagID); err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrAlreadyLinked) || errors.Is(err, model.ErrStoreMismatch) {
			return model.Tag{}, err
		}
		return model.Tag{}, fmt.Errorf("failed to link tag: %w", err)
	}

	tag, err := c.tags.GetByID(ctx, tagID)
	if err != nil {
		return model.Tag{}, fmt.Errorf("failed to get linked tag: %w", err)
	}

	c.logger.Info("Catalog service: tag attached", "item_id", itemID, "tag_id", tagID)

	return tag, nil
}

// DetachTag removes the link between an item and a tag. A spurious detach
// fails with ErrNotLinked; a missing endpoint with ErrNotFound.
func (c *Catalog) DetachTag(ctx context.Context, itemID, tagID uuid.UUID) error {
	err := c.tags.Unlink(ctx, itemID, tagID)
	if err == nil {
		c.logger.Info("Catalog service: tag detached", "item_id", itemID, "tag_id", tagID)
		return nil
	}
	if !errors.Is(err, model.ErrNotLinked) {
		return fmt.Errorf("failed to unlink tag: %w", err)
	}

	// No link row: distinguish a missing endpoint from a spurious detach.
	if _, gerr := c.items.GetByID(ctx, itemID); gerr != nil {
		return gerr
	}
	if _, gerr := c.tags.GetByID(ctx, tagID); gerr != nil {
		return gerr
	}
	return model.ErrNotLinked
}

// DeleteTag removes a tag that has no linked items. The FK constraint on
// the link table makes the check and the delete one atomic step: a link
// attached concurrently wins, and the delete fails with ErrTagInUse.
func (c *Catalog) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	if err := c.tags.Delete(ctx, tagID); err != nil {
		if errors.Is(err, model.ErrTagInUse) {
			c.logger.Info("Catalog service: tag still linked, delete rejected", "tag_id", tagID)
			return model.ErrTagInUse
		}
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	c.logger.Info("Catalog service: tag deleted", "tag_id", tagID)

	return nil
}
