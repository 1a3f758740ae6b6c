package uniqueslug

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/dmitrymomot/uniqslug/core/fieldpath"
	"github.com/dmitrymomot/uniqslug/pkg/slug"
)

// Generate derives a unique slug for root from the field reached via path
// (segments joined by "__", e.g. "table__name") and returns it without
// writing it anywhere; assignment is the caller's responsibility.
//
// The resolved value is slugified, truncated to the length cap, and checked
// against one snapshot of similarly-prefixed identifiers from the store. If
// the base candidate is free it is returned unmodified. Otherwise random
// "-xxxx" suffixes are drawn until a free candidate is found, re-truncating
// the base so the result never exceeds the cap.
//
// Path resolution failures propagate as *fieldpath.ResolutionError; store
// failures wrap ErrStoreQuery. Nothing else fails.
func Generate(ctx context.Context, store Store, root any, path string, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := fieldpath.Resolve(root, path)
	if err != nil {
		return "", err
	}

	base := slug.Make(raw)

	q := Query{
		Field:     cfg.slugField,
		Scope:     cfg.scope,
		ExcludePK: cfg.excludePK,
	}

	if cfg.maxLength <= 0 {
		return generateUnbounded(ctx, store, q, base, cfg)
	}

	if len(base) > cfg.maxLength {
		base = base[:cfg.maxLength]
	}

	q.Prefix = base
	existing, err := store.ExistingSlugs(ctx, q)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	if _, collides := taken[base]; !collides {
		return base, nil
	}

	// Termination is probabilistic: with the default 4 characters over 36
	// symbols there are ~1.6M combinations per truncated base.
	for {
		suffix := "-" + randomString(cfg.suffixSize, cfg.charset)
		allowed := cfg.maxLength - len(suffix)
		if allowed < 0 {
			allowed = 0
		}
		trimmed := base
		if len(trimmed) > allowed {
			trimmed = trimmed[:allowed]
		}
		candidate := trimmed + suffix
		if _, collides := taken[candidate]; !collides {
			return candidate, nil
		}
	}
}

// generateUnbounded skips truncation and trades the upfront snapshot for one
// exact existence check per candidate, narrowing the staleness window at the
// cost of an oracle round-trip per iteration.
func generateUnbounded(ctx context.Context, store Store, q Query, base string, cfg config) (string, error) {
	exists, err := store.SlugExists(ctx, q, base)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}
	if !exists {
		return base, nil
	}

	for {
		candidate := base + "-" + randomString(cfg.suffixSize, cfg.charset)
		exists, err := store.SlugExists(ctx, q, candidate)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrStoreQuery, err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// randomString draws n characters from charset using crypto/rand. The modulo
// bias over a 36-character charset is negligible for collision suffixes.
func randomString(n int, charset string) string {
	if n <= 0 || charset == "" {
		return ""
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// panicking mirrors how the stdlib treats this condition.
		panic(fmt.Sprintf("uniqueslug: crypto/rand unavailable: %v", err))
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}
