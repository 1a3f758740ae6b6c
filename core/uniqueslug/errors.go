package uniqueslug

import "errors"

// Package-level error definitions for slug generation.
var (
	// ErrStoreQuery wraps failures returned by the Store while reading the
	// existing-identifier set. The underlying store error stays in the chain
	// for errors.Is/errors.As checks against driver-specific types.
	ErrStoreQuery = errors.New("slug store query failed")
)
