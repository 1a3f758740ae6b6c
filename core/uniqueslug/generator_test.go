package uniqueslug_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uniqslug/core/fieldpath"
	"github.com/dmitrymomot/uniqslug/core/uniqueslug"
)

type category struct {
	Name string
}

type article struct {
	ID       uuid.UUID
	Title    string
	Category *category
}

// recordingStore wraps MemoryStore and captures the queries it receives.
type recordingStore struct {
	*uniqueslug.MemoryStore
	queries []uniqueslug.Query
	exact   []string
}

func (r *recordingStore) ExistingSlugs(ctx context.Context, q uniqueslug.Query) ([]string, error) {
	r.queries = append(r.queries, q)
	return r.MemoryStore.ExistingSlugs(ctx, q)
}

func (r *recordingStore) SlugExists(ctx context.Context, q uniqueslug.Query, slug string) (bool, error) {
	r.queries = append(r.queries, q)
	r.exact = append(r.exact, slug)
	return r.MemoryStore.SlugExists(ctx, q, slug)
}

type failingStore struct{ err error }

func (f failingStore) ExistingSlugs(context.Context, uniqueslug.Query) ([]string, error) {
	return nil, f.err
}

func (f failingStore) SlugExists(context.Context, uniqueslug.Query, string) (bool, error) {
	return false, f.err
}

func TestGenerate_FastPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty existing set returns base unmodified", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()

		got, err := uniqueslug.Generate(ctx, store, article{Title: "Hello World"}, "title")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("similar prefixes do not force a suffix", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", nil, 1, "hello-world-2")
		store.Set("slug", nil, 2, "hello-worldwide")

		got, err := uniqueslug.Generate(ctx, store, article{Title: "Hello World"}, "title")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("nested path", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		a := article{Title: "ignored", Category: &category{Name: "Science Fiction"}}

		got, err := uniqueslug.Generate(ctx, store, a, "category__name")
		require.NoError(t, err)
		assert.Equal(t, "science-fiction", got)
	})

	t.Run("long base truncated to cap on the fast path", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		a := article{Title: strings.Repeat("a", 80)}

		got, err := uniqueslug.Generate(ctx, store, a, "title")
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("a", 75), got)
	})
}

func TestGenerate_Collisions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("suffix structure and charset", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", nil, 1, "hello-world")

		got, err := uniqueslug.Generate(ctx, store, article{Title: "Hello World"}, "title",
			uniqueslug.WithCharset("abc123"),
		)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^hello-world-[abc123]{4}$`), got)
		assert.NotEqual(t, "hello-world", got)
	})

	t.Run("result length never exceeds cap", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		base := strings.Repeat("b", 74)
		store.Set("slug", nil, 1, base)

		got, err := uniqueslug.Generate(ctx, store, article{Title: base}, "title")
		require.NoError(t, err)
		assert.Len(t, got, 75)
		// 75 - len("-xxxx") leaves 70 characters of the base.
		assert.Equal(t, strings.Repeat("b", 70), got[:70])
		assert.Regexp(t, regexp.MustCompile(`^b{70}-[a-z0-9]{4}$`), got)
	})

	t.Run("small cap still bounds the result", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", nil, 1, "abcdefgh")

		got, err := uniqueslug.Generate(ctx, store, article{Title: "abcdefgh"}, "title",
			uniqueslug.WithMaxLength(10),
		)
		require.NoError(t, err)
		assert.Len(t, got, 10)
		assert.Regexp(t, regexp.MustCompile(`^abcde-[a-z0-9]{4}$`), got)
	})

	t.Run("generated slug is disjoint from the existing set", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		existing := map[string]struct{}{}
		for i, s := range []string{"report", "report-a1b2", "report-c3d4", "report-x9y8"} {
			store.Set("slug", nil, i, s)
			existing[s] = struct{}{}
		}

		got, err := uniqueslug.Generate(ctx, store, article{Title: "Report"}, "title")
		require.NoError(t, err)
		assert.NotContains(t, existing, got)
	})
}

func TestGenerate_ScopeAndExclusion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("disjoint scopes may share the base candidate", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		store.Set("slug", map[string]any{"tenant": "acme"}, 1, "hello-world")

		got, err := uniqueslug.Generate(ctx, store, article{Title: "Hello World"}, "title",
			uniqueslug.WithScope(map[string]any{"tenant": "globex"}),
		)
		require.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("same scope collides", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		scope := map[string]any{"tenant": "acme"}
		store.Set("slug", scope, 1, "hello-world")

		got, err := uniqueslug.Generate(ctx, store, article{Title: "Hello World"}, "title",
			uniqueslug.WithScope(scope),
		)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^hello-world-[a-z0-9]{4}$`), got)
	})

	t.Run("own primary key is excluded on re-save", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()
		id := uuid.New()
		store.Set("slug", nil, id, "hello-world")

		got, err := uniqueslug.Generate(ctx, store, article{ID: id, Title: "Hello World"}, "title",
			uniqueslug.WithExcludePK(id),
		)
		require.NoError(t, err)
		assert.Equal(t, "hello-world", got)
	})

	t.Run("query carries field, prefix, scope and exclusion", func(t *testing.T) {
		t.Parallel()
		store := &recordingStore{MemoryStore: uniqueslug.NewMemoryStore()}
		scope := map[string]any{"tenant": "acme"}

		_, err := uniqueslug.Generate(ctx, store, article{Title: "Hello World"}, "title",
			uniqueslug.WithSlugField("handle"),
			uniqueslug.WithScope(scope),
			uniqueslug.WithExcludePK(7),
		)
		require.NoError(t, err)
		require.Len(t, store.queries, 1)
		q := store.queries[0]
		assert.Equal(t, "handle", q.Field)
		assert.Equal(t, "hello-world", q.Prefix)
		assert.Equal(t, scope, q.Scope)
		assert.Equal(t, 7, q.ExcludePK)
	})
}

func TestGenerate_Unbounded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no truncation", func(t *testing.T) {
		t.Parallel()
		store := &recordingStore{MemoryStore: uniqueslug.NewMemoryStore()}
		long := strings.Repeat("c", 120)

		got, err := uniqueslug.Generate(ctx, store, article{Title: long}, "title",
			uniqueslug.WithoutLengthCap(),
		)
		require.NoError(t, err)
		assert.Equal(t, long, got)
		// Exact checks only, no prefix snapshot.
		require.Len(t, store.exact, 1)
		assert.Empty(t, store.queries[0].Prefix)
	})

	t.Run("collision re-checks each candidate", func(t *testing.T) {
		t.Parallel()
		store := &recordingStore{MemoryStore: uniqueslug.NewMemoryStore()}
		store.Set("slug", nil, 1, "hello-world")

		got, err := uniqueslug.Generate(ctx, store, article{Title: "Hello World"}, "title",
			uniqueslug.WithoutLengthCap(),
		)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^hello-world-[a-z0-9]{4}$`), got)
		// One check for the base, one per candidate drawn.
		assert.GreaterOrEqual(t, len(store.exact), 2)
		assert.Equal(t, "hello-world", store.exact[0])
	})
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("path resolution failure propagates unchanged", func(t *testing.T) {
		t.Parallel()
		store := uniqueslug.NewMemoryStore()

		_, err := uniqueslug.Generate(ctx, store, article{}, "category__name")
		require.Error(t, err)
		assert.ErrorIs(t, err, fieldpath.ErrPathNotResolved)

		var resErr *fieldpath.ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "category__name", resErr.Path)
		assert.Equal(t, "article", resErr.RootType)
	})

	t.Run("store failure wraps ErrStoreQuery and keeps the cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection refused")

		_, err := uniqueslug.Generate(ctx, failingStore{err: cause}, article{Title: "x"}, "title")
		require.Error(t, err)
		assert.ErrorIs(t, err, uniqueslug.ErrStoreQuery)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("unbounded store failure wraps ErrStoreQuery", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection refused")

		_, err := uniqueslug.Generate(ctx, failingStore{err: cause}, article{Title: "x"}, "title",
			uniqueslug.WithoutLengthCap(),
		)
		assert.ErrorIs(t, err, uniqueslug.ErrStoreQuery)
		assert.ErrorIs(t, err, cause)
	})
}
