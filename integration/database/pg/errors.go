package pg

import "errors"

// Domain-specific PostgreSQL errors for consistent error handling.
// Use errors.Is() to check error types for retry logic and reporting.
var (
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	ErrFailedToParseConfig   = errors.New("failed to parse postgres connection string")
	ErrFailedToConnect       = errors.New("failed to connect to postgres")
	ErrMigrationFailed       = errors.New("failed to apply postgres migrations")
	ErrHealthcheckFailed     = errors.New("postgres healthcheck failed")
	ErrMissingTable          = errors.New("slug store requires a table name")
)
