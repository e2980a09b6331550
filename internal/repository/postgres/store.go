package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openshelf/openshelf-server/internal/model"
)

var _ model.StoreRepository = (*StoreRepository)(nil)

type StoreRepository struct {
	db *Connection
}

func NewStoreRepository(db *Connection) *StoreRepository {
	return &StoreRepository{db: db}
}

// Create inserts a store. The unique index on name makes the uniqueness
// check and the insert one atomic step; a concurrent duplicate loses
// with ErrConflict.
func (r *StoreRepository) Create(ctx context.Context, store model.Store) (model.Store, error) {
	const query = `
        INSERT INTO stores (id, name, created_at)
        VALUES ($1, $2, $3)
        RETURNING id, name, created_at
    `

	var saved model.Store
	err := r.db.QueryRow(ctx, query, store.ID, store.Name, store.CreatedAt).Scan(
		&saved.ID, &saved.Name, &saved.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Store{}, model.ErrConflict
		}
		return model.Store{}, wrapStorageErr("create store", err)
	}
	return saved, nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Store, error) {
	const query = `SELECT id, name, created_at FROM stores WHERE id = $1`

	var store model.Store
	err := r.db.QueryRow(ctx, query, id).Scan(&store.ID, &store.Name, &store.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Store{}, model.ErrNotFound
		}
		return model.Store{}, wrapStorageErr("get store by id", err)
	}
	return store, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]model.Store, error) {
	const query = `SELECT id, name, created_at FROM stores ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapStorageErr("list stores", err)
	}
	defer rows.Close()

	stores := []model.Store{}
	for rows.Next() {
		var store model.Store
		if err := rows.Scan(&store.ID, &store.Name, &store.CreatedAt); err != nil {
			return nil, wrapStorageErr("scan store", err)
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("list stores", err)
	}
	return stores, nil
}

// Delete removes a store; items, tags and link rows go with it through
// ON DELETE CASCADE.
func (r *StoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM stores WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapStorageErr("delete store", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
