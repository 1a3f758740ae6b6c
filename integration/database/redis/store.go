package redis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/uniqslug/core/uniqueslug"
)

// defaultKeyPrefix namespaces slug index keys in a shared Redis instance.
const defaultKeyPrefix = "uniqslug"

// defaultScanBatch is the HSCAN page size.
const defaultScanBatch = 1000

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKeyPrefix overrides the key namespace for the slug index.
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// WithScanBatchSize sets the HSCAN page size.
func WithScanBatchSize(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.scanBatch = n
		}
	}
}

// Store adapts a Redis hash per (field, scope) pair to the uniqueslug.Store
// interface. Hash fields are record primary keys; values are their slugs.
type Store struct {
	client    *redis.Client
	keyPrefix string
	scanBatch int
}

// NewStore creates a Redis-backed slug existence store.
func NewStore(client *redis.Client, opts ...StoreOption) *Store {
	s := &Store{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		scanBatch: defaultScanBatch,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Claim records the slug held by pk under the given field and scope.
func (s *Store) Claim(ctx context.Context, field string, scope map[string]any, pk any, slug string) error {
	if err := s.client.HSet(ctx, s.key(field, scope), pkKey(pk), slug).Err(); err != nil {
		return fmt.Errorf("claim slug: %w", err)
	}
	return nil
}

// Release removes pk's slug from the index.
func (s *Store) Release(ctx context.Context, field string, scope map[string]any, pk any) error {
	if err := s.client.HDel(ctx, s.key(field, scope), pkKey(pk)).Err(); err != nil {
		return fmt.Errorf("release slug: %w", err)
	}
	return nil
}

// ExistingSlugs returns slug values under q.Scope starting with q.Prefix,
// excluding q.ExcludePK. The prefix filter is applied client-side while
// scanning the hash.
func (s *Store) ExistingSlugs(ctx context.Context, q uniqueslug.Query) ([]string, error) {
	var slugs []string
	err := s.scan(ctx, q, func(pk, slug string) bool {
		if strings.HasPrefix(slug, q.Prefix) {
			slugs = append(slugs, slug)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return slugs, nil
}

// SlugExists reports whether the exact slug value exists under q.Scope,
// excluding q.ExcludePK.
func (s *Store) SlugExists(ctx context.Context, q uniqueslug.Query, slug string) (bool, error) {
	found := false
	err := s.scan(ctx, q, func(pk, existing string) bool {
		if existing == slug {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// scan walks the hash for q, skipping the excluded primary key, until fn
// returns false or the cursor is exhausted.
func (s *Store) scan(ctx context.Context, q uniqueslug.Query, fn func(pk, slug string) bool) error {
	key := s.key(q.Field, q.Scope)
	exclude := ""
	if q.ExcludePK != nil {
		exclude = pkKey(q.ExcludePK)
	}

	var cursor uint64
	for {
		pairs, next, err := s.client.HScan(ctx, key, cursor, "*", int64(s.scanBatch)).Result()
		if err != nil {
			return fmt.Errorf("scan slug index: %w", err)
		}
		for i := 0; i+1 < len(pairs); i += 2 {
			pk, slug := pairs[i], pairs[i+1]
			if q.ExcludePK != nil && pk == exclude {
				continue
			}
			if !fn(pk, slug) {
				return nil
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// key serializes (field, scope) deterministically so equal scopes map to the
// same hash regardless of map iteration order.
func (s *Store) key(field string, scope map[string]any) string {
	if len(scope) == 0 {
		return s.keyPrefix + ":" + field
	}
	pairs := make([]string, 0, len(scope))
	for k, v := range scope {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(pairs)
	return s.keyPrefix + ":" + field + ":" + strings.Join(pairs, ";")
}

func pkKey(pk any) string {
	return fmt.Sprintf("%v", pk)
}
