// Package redis provides Redis client initialization, health checking, and a
// Redis-backed slug existence store.
//
// Connect validates the Redis URL, attempts connection with exponential
// backoff retries, and verifies connectivity with a ping before returning
// the client. Both redis:// and rediss:// (TLS) URL schemes are supported.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping; load it with core/config:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// # Slug store
//
// The store keeps one hash per (field, scope) pair: hash fields are record
// primary keys, values are the slugs they hold. Callers maintain the index
// with Claim and Release as records are written and removed:
//
//	store := redis.NewStore(client)
//
//	slug, err := uniqueslug.Generate(ctx, store, article, "title")
//	if err != nil {
//		return err
//	}
//	if err := store.Claim(ctx, "slug", nil, article.ID, slug); err != nil {
//		return err
//	}
//
// ExistingSlugs scans the hash and filters by prefix client-side; Redis
// cannot pattern-match hash values server-side.
package redis
