package config

import "errors"

// ErrParseFailed indicates environment variables could not be parsed into
// the target struct (missing required variables or type mismatches).
var ErrParseFailed = errors.New("failed to parse environment variables")
