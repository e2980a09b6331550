package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store owns its items and tags; deleting a store cascades to both.
type Store struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Item belongs to exactly one store. (StoreID, Name) is unique.
type Item struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tag belongs to exactly one store. (StoreID, Name) is unique. A tag with
// at least one linked item cannot be deleted.
type Tag struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	Name      string
	CreatedAt time.Time
}

// StoreRepository persists stores. Create must fail with ErrConflict on a
// duplicate name without leaving a second row, even under concurrent
// identical requests.
type StoreRepository interface {
	Create(ctx context.Context, store Store) (Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (Store, error)
	List(ctx context.Context) ([]Store, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemRepository persists items.
type ItemRepository interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	List(ctx context.Context) ([]Item, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]Item, error)
	ListByTag(ctx context.Context, tagID uuid.UUID) ([]Item, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TagRepository persists tags and the item-tag link table. Link, Unlink
// and Delete must be atomic with respect to each other: a concurrent
// Link during Delete resolves to exactly one winner, never an orphaned
// link row.
type TagRepository interface {
	Create(ctx context.Context, tag Tag) (Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (Tag, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]Tag, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]Tag, error)
	Link(ctx context.Context, itemID, tagID uuid.UUID) error
	Unlink(ctx context.Context, itemID, tagID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
