package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMetadata_SetAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewMetadata(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("abc.def.ghi")))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc.def.ghi"), v)
}

func TestMetadata_GetAbsentReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	r := NewMetadata(db)

	v, err := r.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMetadata_SetOverwrites(t *testing.T) {
	db := setupDB(t)
	r := NewMetadata(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("old")))
	require.NoError(t, r.Set(ctx, KeyToken, []byte("new")))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestMetadata_DeleteIsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewMetadata(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("x")))
	require.NoError(t, r.Delete(ctx, KeyToken))
	require.NoError(t, r.Delete(ctx, KeyToken))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestOpen_MigratesOnExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewMetadata(db).Set(ctx, KeyToken, []byte("keep")))
	require.NoError(t, db.Close())

	// Reopening applies no duplicate migrations and keeps data.
	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, err := NewMetadata(db).Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("keep"), v)
}
