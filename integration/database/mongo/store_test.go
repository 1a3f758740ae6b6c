package mongo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/uniqslug/core/uniqueslug"
)

func TestBuildPrefixFilter(t *testing.T) {
	t.Parallel()

	t.Run("anchored and meta-escaped regex", func(t *testing.T) {
		t.Parallel()
		filter := buildPrefixFilter(uniqueslug.Query{
			Field:  "slug",
			Prefix: "c++-guide",
		})

		assert.Equal(t, bson.D{{
			Key:   "slug",
			Value: bson.D{{Key: "$regex", Value: `^c\+\+-guide`}},
		}}, filter)
	})

	t.Run("scope keys are sorted", func(t *testing.T) {
		t.Parallel()
		filter := buildPrefixFilter(uniqueslug.Query{
			Field:  "slug",
			Prefix: "hello",
			Scope:  map[string]any{"tenant_id": 5, "locale": "en"},
		})

		assert.Equal(t, bson.D{
			{Key: "slug", Value: bson.D{{Key: "$regex", Value: "^hello"}}},
			{Key: "locale", Value: "en"},
			{Key: "tenant_id", Value: 5},
		}, filter)
	})

	t.Run("pk exclusion", func(t *testing.T) {
		t.Parallel()
		id := uuid.New()
		filter := buildPrefixFilter(uniqueslug.Query{
			Field:     "slug",
			Prefix:    "hello",
			ExcludePK: id,
		})

		assert.Equal(t, bson.E{
			Key:   "_id",
			Value: bson.D{{Key: "$ne", Value: id}},
		}, filter[len(filter)-1])
	})
}

func TestBuildExactFilter(t *testing.T) {
	t.Parallel()

	filter := buildExactFilter(uniqueslug.Query{
		Field:     "slug",
		Scope:     map[string]any{"tenant_id": 5},
		ExcludePK: 9,
	}, "hello-world")

	assert.Equal(t, bson.D{
		{Key: "slug", Value: "hello-world"},
		{Key: "tenant_id", Value: 5},
		{Key: "_id", Value: bson.D{{Key: "$ne", Value: 9}}},
	}, filter)
}
