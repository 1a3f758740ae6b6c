package uniqueslug

import "context"

// Query describes one read of the existing-identifier set. The record being
// saved is excluded by primary key so a record keeps its own slug on re-save.
type Query struct {
	// Field is the identifier column/attribute on the record type.
	Field string
	// Prefix filters identifiers to those starting with the base candidate.
	// Only set for ExistingSlugs; every suffixed variant the generator can
	// produce begins with a prefix of the base, so the snapshot stays small
	// while catching all possible collisions.
	Prefix string
	// Scope narrows the uniqueness check with extra equality constraints
	// (e.g. multi-tenant partitioning). Empty means global uniqueness.
	Scope map[string]any
	// ExcludePK is the primary key of the record being saved, or nil for a
	// record that has never been persisted.
	ExcludePK any
}

// Store is the existence oracle over persisted identifiers. Implementations
// live in integration/database; MemoryStore is the in-process reference.
type Store interface {
	// ExistingSlugs returns the identifier values matching q.Scope whose
	// identifier starts with q.Prefix, excluding q.ExcludePK.
	ExistingSlugs(ctx context.Context, q Query) ([]string, error)

	// SlugExists reports whether the exact identifier value exists under
	// q.Scope, excluding q.ExcludePK.
	SlugExists(ctx context.Context, q Query, slug string) (bool, error)
}
