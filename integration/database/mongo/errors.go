package mongo

import "errors"

// Domain-specific MongoDB errors for consistent error handling.
var (
	ErrEmptyConnectionURL = errors.New("empty mongodb connection URL")
	ErrFailedToConnect    = errors.New("failed to connect to mongodb")
	ErrHealthcheckFailed  = errors.New("mongodb healthcheck failed")
)
