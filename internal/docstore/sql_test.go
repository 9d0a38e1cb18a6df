package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorportal/internal/database"
	"mentorportal/internal/logger"
)

func testSQLStore(t *testing.T) *SQLStore {
	t.Helper()

	db, err := database.Connect(":memory:", logger.Nop())
	require.NoError(t, err, "failed to open sqlite db")

	store, err := NewSQLStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLStore_AddAndFindBy(t *testing.T) {
	ctx := context.Background()
	store := testSQLStore(t)

	id, err := store.Add(ctx, "admins", map[string]any{"username": "root", "email": "r@x.io"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := store.FindBy(ctx, "admins", "username", "root", 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0].ID)
	assert.Equal(t, "root", docs[0].Fields["username"])
	assert.Equal(t, "r@x.io", docs[0].Fields["email"])
}

func TestSQLStore_FindByScopesCollection(t *testing.T) {
	ctx := context.Background()
	store := testSQLStore(t)

	_, err := store.Add(ctx, "mentors", map[string]any{"username": "root"})
	require.NoError(t, err)

	docs, err := store.FindBy(ctx, "admins", "username", "root", 1)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSQLStore_FindByLimit(t *testing.T) {
	ctx := context.Background()
	store := testSQLStore(t)

	for i := 0; i < 3; i++ {
		_, err := store.Add(ctx, "admins", map[string]any{"username": "dup"})
		require.NoError(t, err)
	}

	docs, err := store.FindBy(ctx, "admins", "username", "dup", 2)
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = store.FindBy(ctx, "admins", "username", "dup", 0)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}
