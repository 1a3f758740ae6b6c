package uniqueslug_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uniqslug/core/uniqueslug"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("prefix filtering", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", nil, 1, "hello-world")
		store.Set("slug", nil, 2, "hello-world-a1b2")
		store.Set("slug", nil, 3, "unrelated")

		got, err := store.ExistingSlugs(ctx, uniqueslug.Query{Field: "slug", Prefix: "hello-world"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"hello-world", "hello-world-a1b2"}, got)
	})

	t.Run("scope isolation", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", map[string]any{"tenant": "acme"}, 1, "hello")
		store.Set("slug", map[string]any{"tenant": "globex"}, 2, "hello")

		got, err := store.ExistingSlugs(ctx, uniqueslug.Query{
			Field:  "slug",
			Prefix: "hello",
			Scope:  map[string]any{"tenant": "acme"},
		})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("pk exclusion", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", nil, 1, "hello")

		exists, err := store.SlugExists(ctx, uniqueslug.Query{Field: "slug", ExcludePK: 1}, "hello")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = store.SlugExists(ctx, uniqueslug.Query{Field: "slug"}, "hello")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", nil, 1, "hello")
		store.Delete("slug", nil, 1)

		exists, err := store.SlugExists(ctx, uniqueslug.Query{Field: "slug"}, "hello")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("fields are independent", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", nil, 1, "hello")

		exists, err := store.SlugExists(ctx, uniqueslug.Query{Field: "handle"}, "hello")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				store.Set("slug", nil, i, "value")
			}()
			go func() {
				defer wg.Done()
				_, _ = store.ExistingSlugs(ctx, uniqueslug.Query{Field: "slug", Prefix: "v"})
			}()
		}
		wg.Wait()
	})
}
