// Package uniqueslug derives a unique, URL-safe identifier for a record from
// one of its fields and guarantees the result is absent from the set of
// sibling identifiers at generation time.
//
// The source field is reached through a dotted attribute path ("table__name"
// reads record.Table.Name), normalized into slug form, and checked against a
// Store — the existence oracle backed by whatever holds the records
// (PostgreSQL, Redis, MongoDB, or the in-process MemoryStore). On collision a
// short random suffix is appended and the base is re-truncated so the result
// never exceeds the length cap.
//
// # Usage
//
//	store, err := pg.NewStore(pool, pg.TableConfig{Table: "articles", PKColumn: "id"})
//	if err != nil {
//		return err
//	}
//
//	slug, err := uniqueslug.Generate(ctx, store, article, "title",
//		uniqueslug.WithScope(map[string]any{"tenant_id": tenantID}),
//		uniqueslug.WithExcludePK(article.ID),
//	)
//	if err != nil {
//		return err
//	}
//	article.Slug = slug // assignment is the caller's responsibility
//
// By default the result is capped at 75 characters and collisions are
// resolved with a 4-character suffix drawn from lowercase letters and digits.
// WithoutLengthCap switches to the unbounded variant, which skips truncation
// and re-checks each candidate against the store individually.
//
// # Consistency
//
// The existing-identifier set is read once per call (capped variant) and is
// not kept consistent afterwards: between the snapshot and the caller's
// write-back a concurrent writer can claim the same value. Generate provides
// best-effort uncommitted uniqueness; a unique constraint in the storage
// layer is the backstop. The unbounded variant narrows the window by
// re-checking per candidate, at one oracle round-trip per iteration.
package uniqueslug
