package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func backends(t *testing.T) map[string]Repository {
	t.Helper()
	mem, err := NewMemoryRepository()
	require.NoError(t, err)
	return map[string]Repository{
		"sqlite": NewSQLiteRepository(setupDB(t)),
		"memory": mem,
	}
}

func TestRepository_SetGetOverwrite(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, r.Set(ctx, KeySeed, []byte("first")))
			v, err := r.Get(ctx, KeySeed)
			require.NoError(t, err)
			assert.Equal(t, []byte("first"), v)

			require.NoError(t, r.Set(ctx, KeySeed, []byte("second")))
			v, err = r.Get(ctx, KeySeed)
			require.NoError(t, err)
			assert.Equal(t, []byte("second"), v)
		})
	}
}

func TestRepository_GetMissingReturnsNil(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, err := r.Get(context.Background(), "absent")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	for name, r := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.Set(ctx, "k", []byte{1}))
			require.NoError(t, r.Delete(ctx, "k"))
			require.NoError(t, r.Delete(ctx, "k"))

			v, err := r.Get(ctx, "k")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestSQLiteRepository_ErrorsWrapKey(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Get(context.Background(), "seed")
	require.ErrorContains(t, err, "metadata[seed]")
	require.ErrorContains(t, r.Set(context.Background(), "seed", []byte("x")), "metadata[seed]")
}
