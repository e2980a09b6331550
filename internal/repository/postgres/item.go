package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openshelf/openshelf-server/internal/model"
)

var _ model.ItemRepository = (*ItemRepository)(nil)

type ItemRepository struct {
	db *Connection
}

func NewItemRepository(db *Connection) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, store_id, name, price, created_at, updated_at`

// Create inserts an item. The unique index on (store_id, name) and the
// foreign key to stores gate the insert atomically: a duplicate name
// loses with ErrConflict, a missing store with ErrNotFound.
func (r *ItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	const query = `
        INSERT INTO items (id, store_id, name, price, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + itemColumns

	var saved model.Item
	err := r.db.QueryRow(ctx, query,
		item.ID, item.StoreID, item.Name, item.Price, item.CreatedAt, item.UpdatedAt,
	).Scan(&saved.ID, &saved.StoreID, &saved.Name, &saved.Price, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Item{}, model.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, wrapStorageErr("create item", err)
	}
	return saved, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	var item model.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.StoreID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, wrapStorageErr("get item by id", err)
	}
	return item, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items ORDER BY name`
	return r.queryItems(ctx, query)
}

func (r *ItemRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE store_id = $1 ORDER BY name`
	return r.queryItems(ctx, query, storeID)
}

// ListByTag materializes the items a tag is attached to.
func (r *ItemRepository) ListByTag(ctx context.Context, tagID uuid.UUID) ([]model.Item, error) {
	const query = `
        SELECT i.id, i.store_id, i.name, i.price, i.created_at, i.updated_at
        FROM items i
        JOIN items_tags it ON it.item_id = i.id
        WHERE it.tag_id = $1
        ORDER BY i.name
    `
	return r.queryItems(ctx, query, tagID)
}

func (r *ItemRepository) UpdatePrice(ctx context.Context, id uuid.UUID, price float64) (model.Item, error) {
	const query = `
        UPDATE items SET price = $2, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + itemColumns

	var item model.Item
	err := r.db.QueryRow(ctx, query, id, price).Scan(
		&item.ID, &item.StoreID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, wrapStorageErr("update item price", err)
	}
	return item, nil
}

// Delete removes an item; its link rows cascade.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapStorageErr("delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorageErr("list items", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.StoreID, &item.Name, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, wrapStorageErr("scan item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("list items", err)
	}
	return items, nil
}
