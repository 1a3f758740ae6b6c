package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores one parsed value per configuration type.
	cache sync.Map // reflect.Type -> T

	// dotenvOnce loads .env files a single time per process.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg. Each configuration type is
// parsed once per process; later calls for the same type return the cached
// value. A .env file in the working directory is loaded on first use.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Missing .env files are fine; real environments set variables directly.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	// Another goroutine may have stored first; use its value so all callers
	// observe the same configuration.
	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
