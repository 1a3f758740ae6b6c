// Package logger provides structured logging utilities built on Go's standard slog package.
//
// It offers a small factory with environment presets and nil-safe attribute
// helpers for the logging patterns used across this module.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/uniqslug/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("uniqslug"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("uniqslug"))
//
//	log.Info("store connected",
//		logger.Component("pg"),
//		logger.Duration(elapsed),
//	)
//
// Attribute helpers return an empty slog.Attr for nil/zero input, so calls
// like log.Info("msg", logger.Error(err)) need no explicit nil checks.
package logger
