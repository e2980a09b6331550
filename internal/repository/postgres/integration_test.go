//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/openshelf/openshelf-server/internal/model"
	repo "github.com/openshelf/openshelf-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "openshelf_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/openshelf_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newStore(t *testing.T, ctx context.Context, sr *repo.StoreRepository, name string) model.Store {
	t.Helper()
	saved, err := sr.Create(ctx, model.Store{ID: uuid.New(), Name: name, CreatedAt: time.Now()})
	require.NoError(t, err)
	return saved
}

func newItem(t *testing.T, ctx context.Context, ir *repo.ItemRepository, storeID uuid.UUID, name string, price float64) model.Item {
	t.Helper()
	saved, err := ir.Create(ctx, model.Item{ID: uuid.New(), StoreID: storeID, Name: name, Price: price, CreatedAt: time.Now(), UpdatedAt: time.Now()})
	require.NoError(t, err)
	return saved
}

func newTag(t *testing.T, ctx context.Context, tr *repo.TagRepository, storeID uuid.UUID, name string) model.Tag {
	t.Helper()
	saved, err := tr.Create(ctx, model.Tag{ID: uuid.New(), StoreID: storeID, Name: name, CreatedAt: time.Now()})
	require.NoError(t, err)
	return saved
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)
		u := model.User{
			ID:           uuid.New(),
			Username:     "alice",
			PasswordHash: []byte("$2a$04$hash"),
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		saved, err := ur.Create(ctx, u)
		require.NoError(t, err)
		require.Equal(t, u.ID, saved.ID)
		require.False(t, saved.IsAdmin)

		byName, err := ur.GetByUsername(ctx, u.Username)
		require.NoError(t, err)
		require.Equal(t, u.ID, byName.ID)

		_, err = ur.Create(ctx, model.User{ID: uuid.New(), Username: "alice", PasswordHash: []byte("x"), CreatedAt: time.Now(), UpdatedAt: time.Now()})
		require.ErrorIs(t, err, model.ErrConflict)

		require.NoError(t, ur.Delete(ctx, u.ID))
		_, err = ur.GetByID(ctx, u.ID)
		require.ErrorIs(t, err, model.ErrNotFound)

		// The soft-deleted row no longer blocks the username.
		_, err = ur.Create(ctx, model.User{ID: uuid.New(), Username: "alice", PasswordHash: []byte("y"), CreatedAt: time.Now(), UpdatedAt: time.Now()})
		require.NoError(t, err)
	})

	t.Run("store_repository", func(t *testing.T) {
		sr := repo.NewStoreRepository(conn)
		store := newStore(t, ctx, sr, "grocery")

		_, err := sr.Create(ctx, model.Store{ID: uuid.New(), Name: "grocery", CreatedAt: time.Now()})
		require.ErrorIs(t, err, model.ErrConflict)

		got, err := sr.GetByID(ctx, store.ID)
		require.NoError(t, err)
		require.Equal(t, "grocery", got.Name)

		list, err := sr.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(list), 1)

		require.NoError(t, sr.Delete(ctx, store.ID))
		require.ErrorIs(t, sr.Delete(ctx, store.ID), model.ErrNotFound)
	})

	t.Run("item_repository", func(t *testing.T) {
		sr := repo.NewStoreRepository(conn)
		ir := repo.NewItemRepository(conn)
		store := newStore(t, ctx, sr, "hardware")

		item := newItem(t, ctx, ir, store.ID, "hammer", 9.99)

		_, err := ir.Create(ctx, model.Item{ID: uuid.New(), StoreID: store.ID, Name: "hammer", Price: 1, CreatedAt: time.Now(), UpdatedAt: time.Now()})
		require.ErrorIs(t, err, model.ErrConflict)

		_, err = ir.Create(ctx, model.Item{ID: uuid.New(), StoreID: uuid.New(), Name: "orphan", Price: 1, CreatedAt: time.Now(), UpdatedAt: time.Now()})
		require.ErrorIs(t, err, model.ErrNotFound)

		updated, err := ir.UpdatePrice(ctx, item.ID, 12.5)
		require.NoError(t, err)
		require.Equal(t, 12.5, updated.Price)

		_, err = ir.UpdatePrice(ctx, uuid.New(), 1)
		require.ErrorIs(t, err, model.ErrNotFound)

		byStore, err := ir.ListByStore(ctx, store.ID)
		require.NoError(t, err)
		require.Len(t, byStore, 1)

		require.NoError(t, ir.Delete(ctx, item.ID))
		require.ErrorIs(t, ir.Delete(ctx, item.ID), model.ErrNotFound)
	})

	t.Run("tag_repository", func(t *testing.T) {
		sr := repo.NewStoreRepository(conn)
		ir := repo.NewItemRepository(conn)
		tr := repo.NewTagRepository(conn)

		store := newStore(t, ctx, sr, "bookshop")
		item := newItem(t, ctx, ir, store.ID, "atlas", 30)
		tag := newTag(t, ctx, tr, store.ID, "maps")

		require.NoError(t, tr.Link(ctx, item.ID, tag.ID))
		require.ErrorIs(t, tr.Link(ctx, item.ID, tag.ID), model.ErrAlreadyLinked)

		tags, err := tr.ListByItem(ctx, item.ID)
		require.NoError(t, err)
		require.Len(t, tags, 1)

		items, err := ir.ListByTag(ctx, tag.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)

		require.ErrorIs(t, tr.Delete(ctx, tag.ID), model.ErrTagInUse)

		require.NoError(t, tr.Unlink(ctx, item.ID, tag.ID))
		require.ErrorIs(t, tr.Unlink(ctx, item.ID, tag.ID), model.ErrNotLinked)

		require.NoError(t, tr.Delete(ctx, tag.ID))
		require.ErrorIs(t, tr.Delete(ctx, tag.ID), model.ErrNotFound)
	})

	t.Run("cross_store_link", func(t *testing.T) {
		sr := repo.NewStoreRepository(conn)
		ir := repo.NewItemRepository(conn)
		tr := repo.NewTagRepository(conn)

		storeA := newStore(t, ctx, sr, "store-a")
		storeB := newStore(t, ctx, sr, "store-b")
		item := newItem(t, ctx, ir, storeA.ID, "widget", 1)
		tag := newTag(t, ctx, tr, storeB.ID, "other")

		require.ErrorIs(t, tr.Link(ctx, item.ID, tag.ID), model.ErrStoreMismatch)
		require.ErrorIs(t, tr.Link(ctx, uuid.New(), tag.ID), model.ErrNotFound)
		require.ErrorIs(t, tr.Link(ctx, item.ID, uuid.New()), model.ErrNotFound)
	})

	t.Run("store_cascade", func(t *testing.T) {
		sr := repo.NewStoreRepository(conn)
		ir := repo.NewItemRepository(conn)
		tr := repo.NewTagRepository(conn)

		store := newStore(t, ctx, sr, "doomed")
		item := newItem(t, ctx, ir, store.ID, "relic", 5)
		tag := newTag(t, ctx, tr, store.ID, "old")
		require.NoError(t, tr.Link(ctx, item.ID, tag.ID))

		require.NoError(t, sr.Delete(ctx, store.ID))

		_, err := ir.GetByID(ctx, item.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
		_, err = tr.GetByID(ctx, tag.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestRepositories_Races(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	sr := repo.NewStoreRepository(conn)
	ir := repo.NewItemRepository(conn)
	tr := repo.NewTagRepository(conn)

	t.Run("concurrent_store_create", func(t *testing.T) {
		const workers = 8
		var wg sync.WaitGroup
		errs := make([]error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = sr.Create(ctx, model.Store{ID: uuid.New(), Name: "contested", CreatedAt: time.Now()})
			}(i)
		}
		wg.Wait()

		var won, lost int
		for _, err := range errs {
			switch {
			case err == nil:
				won++
			default:
				require.ErrorIs(t, err, model.ErrConflict)
				lost++
			}
		}
		require.Equal(t, 1, won)
		require.Equal(t, workers-1, lost)
	})

	t.Run("attach_vs_tag_delete", func(t *testing.T) {
		const rounds = 20
		store := newStore(t, ctx, sr, "racing")
		item := newItem(t, ctx, ir, store.ID, "prize", 1)

		for i := 0; i < rounds; i++ {
			tag := newTag(t, ctx, tr, store.ID, fmt.Sprintf("round-%d", i))

			var wg sync.WaitGroup
			var linkErr, delErr error
			wg.Add(2)
			go func() {
				defer wg.Done()
				linkErr = tr.Link(ctx, item.ID, tag.ID)
			}()
			go func() {
				defer wg.Done()
				delErr = tr.Delete(ctx, tag.ID)
			}()
			wg.Wait()

			// Either the delete wins and the link sees no tag, or the
			// link wins and the delete is refused. Never both succeed
			// leaving a dangling link.
			if linkErr == nil {
				require.ErrorIs(t, delErr, model.ErrTagInUse)
				require.NoError(t, tr.Unlink(ctx, item.ID, tag.ID))
				require.NoError(t, tr.Delete(ctx, tag.ID))
			} else {
				require.ErrorIs(t, linkErr, model.ErrNotFound)
				require.NoError(t, delErr)
			}
		}
	})
}
