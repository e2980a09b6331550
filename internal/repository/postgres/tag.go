package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openshelf/openshelf-server/internal/model"
)

var _ model.TagRepository = (*TagRepository)(nil)

type TagRepository struct {
	db *Connection
}

func NewTagRepository(db *Connection) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, tag model.Tag) (model.Tag, error) {
	const query = `
        INSERT INTO tags (id, store_id, name, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, store_id, name, created_at
    `

	var saved model.Tag
	err := r.db.QueryRow(ctx, query, tag.ID, tag.StoreID, tag.Name, tag.CreatedAt).Scan(
		&saved.ID, &saved.StoreID, &saved.Name, &saved.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Tag{}, model.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return model.Tag{}, model.ErrNotFound
		}
		return model.Tag{}, wrapStorageErr("create tag", err)
	}
	return saved, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Tag, error) {
	const query = `SELECT id, store_id, name, created_at FROM tags WHERE id = $1`

	var tag model.Tag
	err := r.db.QueryRow(ctx, query, id).Scan(&tag.ID, &tag.StoreID, &tag.Name, &tag.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tag{}, model.ErrNotFound
		}
		return model.Tag{}, wrapStorageErr("get tag by id", err)
	}
	return tag, nil
}

func (r *TagRepository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]model.Tag, error) {
	const query = `SELECT id, store_id, name, created_at FROM tags WHERE store_id = $1 ORDER BY name`
	return r.queryTags(ctx, query, storeID)
}

func (r *TagRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.Tag, error) {
	const query = `
        SELECT t.id, t.store_id, t.name, t.created_at
        FROM tags t
        JOIN items_tags it ON it.tag_id = t.id
        WHERE it.item_id = $1
        ORDER BY t.name
    `
	return r.queryTags(ctx, query, itemID)
}

// Link attaches a tag to an item. The INSERT...SELECT joins item and tag
// on store_id, so the same-store rule and the existence checks collapse
// into the one statement: zero rows means one of them is missing or they
// live in different stores, and the follow-up lookups tell which.
func (r *TagRepository) Link(ctx context.Context, itemID, tagID uuid.UUID) error {
	const query = `
        INSERT INTO items_tags (item_id, tag_id)
        SELECT i.id, t.id
        FROM items i
        JOIN tags t ON t.store_id = i.store_id
        WHERE i.id = $1 AND t.id = $2
    `

	tag, err := r.db.Exec(ctx, query, itemID, tagID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAlreadyLinked
		}
		return wrapStorageErr("link tag", err)
	}
	if tag.RowsAffected() == 0 {
		return r.diagnoseLink(ctx, itemID, tagID)
	}
	return nil
}

func (r *TagRepository) diagnoseLink(ctx context.Context, itemID, tagID uuid.UUID) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, itemID).Scan(&exists); err != nil {
		return wrapStorageErr("link tag", err)
	}
	if !exists {
		return model.ErrNotFound
	}
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tags WHERE id = $1)`, tagID).Scan(&exists); err != nil {
		return wrapStorageErr("link tag", err)
	}
	if !exists {
		return model.ErrNotFound
	}
	return model.ErrStoreMismatch
}

func (r *TagRepository) Unlink(ctx context.Context, itemID, tagID uuid.UUID) error {
	const query = `DELETE FROM items_tags WHERE item_id = $1 AND tag_id = $2`

	tag, err := r.db.Exec(ctx, query, itemID, tagID)
	if err != nil {
		return wrapStorageErr("unlink tag", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotLinked
	}
	return nil
}

// Delete removes an unreferenced tag. The link table's foreign key on
// tag_id is NO ACTION, so a tag that is still attached fails the delete
// atomically with ErrTagInUse; there is no check-then-act window.
func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM tags WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.ErrTagInUse
		}
		return wrapStorageErr("delete tag", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *TagRepository) queryTags(ctx context.Context, query string, args ...any) ([]model.Tag, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStorageErr("list tags", err)
	}
	defer rows.Close()

	tags := []model.Tag{}
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.StoreID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, wrapStorageErr("scan tag", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("list tags", err)
	}
	return tags, nil
}
