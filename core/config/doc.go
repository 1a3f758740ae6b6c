// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once per process and
// cached for subsequent calls.
//
// A .env file in the working directory is loaded automatically on first use;
// parsing is delegated to the caarlos0/env library, so the integration
// packages' Config structs work directly:
//
//	import (
//		"github.com/dmitrymomot/uniqslug/core/config"
//		"github.com/dmitrymomot/uniqslug/integration/database/pg"
//	)
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful for startup)
//	config.MustLoad(&cfg)
//
// Loading the same type again returns the cached value, so components can
// load their own configuration independently without re-reading the
// environment; different types are cached independently.
package config
