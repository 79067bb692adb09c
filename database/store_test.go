package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest runs the behavioral suite against every DocumentStore
// implementation so SQLite and the in-memory test double cannot drift apart.
func storeUnderTest(t *testing.T, name string, open func(t *testing.T) DocumentStore) {
	ctx := context.Background()

	t.Run(name+"/get absent", func(t *testing.T) {
		store := open(t)

		doc, found, err := store.Get(ctx, "lotes", "17")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, doc)
	})

	t.Run(name+"/put then get", func(t *testing.T) {
		store := open(t)

		err := store.Put(ctx, "lotes", "17", Document{"description": "casaco menina 4-8 meses", "trade": "sim"}, false)
		require.NoError(t, err)

		doc, found, err := store.Get(ctx, "lotes", "17")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "casaco menina 4-8 meses", doc["description"])
		assert.Equal(t, "sim", doc["trade"])
	})

	t.Run(name+"/replace drops old fields", func(t *testing.T) {
		store := open(t)

		require.NoError(t, store.Put(ctx, "lotes", "17", Document{"description": "casaco", "trade": "sim"}, false))
		require.NoError(t, store.Put(ctx, "lotes", "17", Document{"description": "vestido"}, false))

		doc, found, err := store.Get(ctx, "lotes", "17")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "vestido", doc["description"])
		_, hasTrade := doc["trade"]
		assert.False(t, hasTrade, "replace must not keep fields from the previous document")
	})

	t.Run(name+"/merge keeps old fields", func(t *testing.T) {
		store := open(t)

		require.NoError(t, store.Put(ctx, "lotes", "17", Document{"description": "casaco", "trade": "sim"}, false))
		require.NoError(t, store.Put(ctx, "lotes", "17", Document{"assignedTo": "client-1"}, true))

		doc, found, err := store.Get(ctx, "lotes", "17")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "casaco", doc["description"])
		assert.Equal(t, "sim", doc["trade"])
		assert.Equal(t, "client-1", doc["assignedTo"])
	})

	t.Run(name+"/merge creates absent document", func(t *testing.T) {
		store := open(t)

		require.NoError(t, store.Put(ctx, "sizes", "clothes-F-M", Document{"count": float64(1)}, true))

		doc, found, err := store.Get(ctx, "sizes", "clothes-F-M")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, float64(1), doc["count"])
	})

	t.Run(name+"/delete", func(t *testing.T) {
		store := open(t)

		require.NoError(t, store.Put(ctx, "lotes", "17", Document{"description": "casaco"}, false))
		require.NoError(t, store.Delete(ctx, "lotes", "17"))

		_, found, err := store.Get(ctx, "lotes", "17")
		require.NoError(t, err)
		assert.False(t, found)

		// Deleting an absent id is not an error.
		require.NoError(t, store.Delete(ctx, "lotes", "17"))
	})

	t.Run(name+"/enumerate ordered by id", func(t *testing.T) {
		store := open(t)

		require.NoError(t, store.Put(ctx, "clients", "b", Document{"name": "Beatriz"}, false))
		require.NoError(t, store.Put(ctx, "clients", "a", Document{"name": "Ana"}, false))
		require.NoError(t, store.Put(ctx, "clients", "c", Document{"name": "Carla"}, false))

		entries, err := store.Enumerate(ctx, "clients")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "a", entries[0].ID)
		assert.Equal(t, "b", entries[1].ID)
		assert.Equal(t, "c", entries[2].ID)
		assert.Equal(t, "Ana", entries[0].Doc["name"])
	})

	t.Run(name+"/enumerate empty collection", func(t *testing.T) {
		store := open(t)

		entries, err := store.Enumerate(ctx, "history")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run(name+"/collections are isolated", func(t *testing.T) {
		store := open(t)

		require.NoError(t, store.Put(ctx, "lotes", "1", Document{"description": "casaco"}, false))

		_, found, err := store.Get(ctx, "clients", "1")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestSQLiteStore(t *testing.T) {
	storeUnderTest(t, "sqlite", func(t *testing.T) DocumentStore {
		store, err := NewSQLiteStore(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, "memory", func(t *testing.T) DocumentStore {
		return NewMemoryStore()
	})
}

func TestMemoryStoreFailureHooks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	boom := errors.New("injected failure")

	store.FailPut = func(collection, id string) error {
		if collection == "sizes" {
			return boom
		}
		return nil
	}

	require.NoError(t, store.Put(ctx, "lotes", "1", Document{"description": "casaco"}, false))
	assert.ErrorIs(t, store.Put(ctx, "sizes", "clothes-F-M", Document{"count": float64(1)}, true), boom)

	store.FailPut = nil
	require.NoError(t, store.Put(ctx, "sizes", "clothes-F-M", Document{"count": float64(1)}, true))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "lotes", "1", Document{"description": "casaco"}, false))

	doc, found, err := store.Get(ctx, "lotes", "1")
	require.NoError(t, err)
	require.True(t, found)

	doc["description"] = "mutated"

	again, _, err := store.Get(ctx, "lotes", "1")
	require.NoError(t, err)
	assert.Equal(t, "casaco", again["description"], "mutating a returned document must not change stored state")
}
