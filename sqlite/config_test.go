package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/cwsummary"
	"github.com/fwojciec/cwsummary/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_GetValue(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unset key", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewConfigStore(setupTestDB(t))

		_, err := store.GetValue(context.Background(), "course-1", cwsummary.APIKeyName)

		require.Error(t, err)
		assert.Equal(t, cwsummary.ENOTFOUND, cwsummary.ErrorCode(err))
	})

	t.Run("values are scoped by range and key", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewConfigStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.StoreValue(ctx, "course-1", "a", "1"))
		require.NoError(t, store.StoreValue(ctx, "course-2", "a", "2"))
		require.NoError(t, store.StoreValue(ctx, "course-1", "b", "3"))

		v, err := store.GetValue(ctx, "course-1", "a")
		require.NoError(t, err)
		assert.Equal(t, "1", v)

		v, err = store.GetValue(ctx, "course-2", "a")
		require.NoError(t, err)
		assert.Equal(t, "2", v)

		v, err = store.GetValue(ctx, "course-1", "b")
		require.NoError(t, err)
		assert.Equal(t, "3", v)
	})
}

func TestConfigStore_StoreValue(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing value", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewConfigStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.StoreValue(ctx, "course-1", "k", "old"))
		require.NoError(t, store.StoreValue(ctx, "course-1", "k", "new"))

		v, err := store.GetValue(ctx, "course-1", "k")
		require.NoError(t, err)
		assert.Equal(t, "new", v)
	})

	t.Run("accepts empty value", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewConfigStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.StoreValue(ctx, "course-1", "k", ""))

		v, err := store.GetValue(ctx, "course-1", "k")
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("requires range ID and key", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewConfigStore(setupTestDB(t))
		ctx := context.Background()

		assert.Equal(t, cwsummary.EINVALID, cwsummary.ErrorCode(store.StoreValue(ctx, "", "k", "v")))
		assert.Equal(t, cwsummary.EINVALID, cwsummary.ErrorCode(store.StoreValue(ctx, "course-1", "", "v")))
	})
}

func TestConfigStore_APIKeyRoundTrip(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	pages := sqlite.NewPageService(db)
	store := sqlite.NewConfigStore(db)
	ctx := context.Background()

	page := &cwsummary.Page{
		RangeID: "course-1",
		Title:   "Intro",
		Containers: []*cwsummary.Container{{Blocks: []*cwsummary.Block{
			{Type: cwsummary.BlockTypeText, Payload: []byte(`{"text":"hi"}`)},
		}}},
	}
	require.NoError(t, pages.CreatePage(ctx, page))
	blockID := page.Containers[0].Blocks[0].ID

	owner, err := pages.FindPageByBlockID(ctx, blockID)
	require.NoError(t, err)
	require.NoError(t, cwsummary.StoreAPIKey(ctx, store, owner.RangeID, "k1"))

	owner, err = pages.FindPageByBlockID(ctx, blockID)
	require.NoError(t, err)
	key, ok, err := cwsummary.APIKey(ctx, store, owner.RangeID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "k1", key)
}
