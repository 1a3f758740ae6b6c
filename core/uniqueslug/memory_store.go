package uniqueslug

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore implements Store with in-process storage. It doubles as the
// reference backend and the test double: callers maintain the index with
// Set/Delete as records are written and removed.
type MemoryStore struct {
	mu sync.RWMutex
	// scope key -> primary key -> slug
	slugs map[string]map[string]string
}

// NewMemoryStore creates an empty in-memory slug index.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slugs: make(map[string]map[string]string),
	}
}

// Set records the slug held by pk under the given field and scope.
func (s *MemoryStore) Set(field string, scope map[string]any, pk any, slug string) {
	key := scopeKey(field, scope)

	s.mu.Lock()
	defer s.mu.Unlock()
	bucket, ok := s.slugs[key]
	if !ok {
		bucket = make(map[string]string)
		s.slugs[key] = bucket
	}
	bucket[pkKey(pk)] = slug
}

// Delete removes pk's slug from the index.
func (s *MemoryStore) Delete(field string, scope map[string]any, pk any) {
	key := scopeKey(field, scope)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slugs[key], pkKey(pk))
}

// ExistingSlugs returns slugs under q.Scope starting with q.Prefix,
// excluding q.ExcludePK.
func (s *MemoryStore) ExistingSlugs(_ context.Context, q Query) ([]string, error) {
	exclude := ""
	if q.ExcludePK != nil {
		exclude = pkKey(q.ExcludePK)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for pk, slug := range s.slugs[scopeKey(q.Field, q.Scope)] {
		if q.ExcludePK != nil && pk == exclude {
			continue
		}
		if strings.HasPrefix(slug, q.Prefix) {
			out = append(out, slug)
		}
	}
	return out, nil
}

// SlugExists reports whether the exact slug exists under q.Scope, excluding
// q.ExcludePK.
func (s *MemoryStore) SlugExists(_ context.Context, q Query, slug string) (bool, error) {
	exclude := ""
	if q.ExcludePK != nil {
		exclude = pkKey(q.ExcludePK)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for pk, existing := range s.slugs[scopeKey(q.Field, q.Scope)] {
		if q.ExcludePK != nil && pk == exclude {
			continue
		}
		if existing == slug {
			return true, nil
		}
	}
	return false, nil
}

// scopeKey serializes (field, scope) deterministically so equal scopes land
// in the same bucket regardless of map iteration order.
func scopeKey(field string, scope map[string]any) string {
	if len(scope) == 0 {
		return field
	}
	pairs := make([]string, 0, len(scope))
	for k, v := range scope {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(pairs)
	return field + "|" + strings.Join(pairs, ";")
}

func pkKey(pk any) string {
	return fmt.Sprintf("%v", pk)
}
