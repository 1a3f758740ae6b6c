// Package pg provides PostgreSQL connection management and a pgx-backed slug
// existence store.
//
// It wraps the pgx driver with application-level retry logic, connection pool
// tuning, and goose migrations, and adapts one table to the
// uniqueslug.Store interface so slug uniqueness checks run against live rows.
//
// # Configuration
//
// Configuration is handled through the Config struct with environment
// variable mapping; load it with core/config:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// Connection establishment retries with exponential backoff to ride out
// transient network issues and restarts.
//
// # Slug store
//
//	store, err := pg.NewStore(pool, pg.TableConfig{Table: "articles", PKColumn: "id"})
//	slug, err := uniqueslug.Generate(ctx, store, article, "title")
//
// Scope constraints become equality predicates, the prefix filter becomes a
// wildcard-escaped LIKE, and the record's own primary key is excluded with a
// <> predicate. When the context carries a pgx.Tx (see WithTx), queries run
// inside that transaction so the uniqueness check observes uncommitted rows
// from the caller's own writes.
package pg
