package mongo

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/uniqslug/core/uniqueslug"
)

// Store adapts one MongoDB collection to the uniqueslug.Store interface.
// Documents are expected to keep the slug in the field named by the query
// and their primary key in _id.
type Store struct {
	coll *mongo.Collection
}

// NewStore creates a slug existence store over the given collection.
func NewStore(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// ExistingSlugs returns slug values under q.Scope starting with q.Prefix,
// excluding q.ExcludePK.
func (s *Store) ExistingSlugs(ctx context.Context, q uniqueslug.Query) ([]string, error) {
	filter := buildPrefixFilter(q)
	projection := options.Find().SetProjection(bson.D{
		{Key: q.Field, Value: 1},
		{Key: "_id", Value: 0},
	})

	cursor, err := s.coll.Find(ctx, filter, projection)
	if err != nil {
		return nil, fmt.Errorf("find existing slugs: %w", err)
	}
	defer cursor.Close(ctx)

	var slugs []string
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode slug document: %w", err)
		}
		if slug, ok := doc[q.Field].(string); ok {
			slugs = append(slugs, slug)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate slug documents: %w", err)
	}
	return slugs, nil
}

// SlugExists reports whether the exact slug value exists under q.Scope,
// excluding q.ExcludePK.
func (s *Store) SlugExists(ctx context.Context, q uniqueslug.Query, slug string) (bool, error) {
	filter := buildExactFilter(q, slug)

	count, err := s.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count slug documents: %w", err)
	}
	return count > 0, nil
}

// buildPrefixFilter renders the snapshot filter: an anchored, meta-escaped
// regex on the slug field plus scope equality and pk exclusion.
func buildPrefixFilter(q uniqueslug.Query) bson.D {
	filter := bson.D{{
		Key:   q.Field,
		Value: bson.D{{Key: "$regex", Value: "^" + regexp.QuoteMeta(q.Prefix)}},
	}}
	return appendCommonFilters(filter, q)
}

// buildExactFilter renders the exact existence filter.
func buildExactFilter(q uniqueslug.Query, slug string) bson.D {
	filter := bson.D{{Key: q.Field, Value: slug}}
	return appendCommonFilters(filter, q)
}

// appendCommonFilters adds scope equality constraints (sorted for
// determinism) and the primary key exclusion.
func appendCommonFilters(filter bson.D, q uniqueslug.Query) bson.D {
	keys := make([]string, 0, len(q.Scope))
	for k := range q.Scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		filter = append(filter, bson.E{Key: k, Value: q.Scope[k]})
	}

	if q.ExcludePK != nil {
		filter = append(filter, bson.E{
			Key:   "_id",
			Value: bson.D{{Key: "$ne", Value: q.ExcludePK}},
		})
	}
	return filter
}
