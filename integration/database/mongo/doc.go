// Package mongo provides MongoDB client initialization, health checking, and
// a collection-backed slug existence store.
//
// It wraps the official MongoDB Go driver with application-level retry logic
// for cloud deployments (Atlas cold starts, brief network interruptions) and
// adapts one collection to the uniqueslug.Store interface.
//
// Basic usage:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg, "myapp")
//	if err != nil {
//		return err
//	}
//
//	store := mongo.NewStore(db.Collection("articles"))
//	slug, err := uniqueslug.Generate(ctx, store, article, "title")
//
// Scope constraints become equality filters, the prefix match becomes an
// anchored, meta-escaped $regex, and the record's own primary key is excluded
// with an _id $ne filter. Configuration is handled through environment
// variables via the Config struct.
package mongo
