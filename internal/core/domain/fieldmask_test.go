package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFieldMask(t *testing.T) {
	t.Run("empty spec yields token-only mask", func(t *testing.T) {
		m := NormalizeFieldMask("")

		assert.Equal(t, []string{TokenField}, m.Fields())
	})

	t.Run("whitespace and empty segments are dropped", func(t *testing.T) {
		m := NormalizeFieldMask("  , places.id ,, ,places.location ")

		assert.Equal(t, []string{TokenField, "places.id", "places.location"}, m.Fields())
	})

	t.Run("token inserted at front when absent", func(t *testing.T) {
		m := NormalizeFieldMask("a,a,b")

		assert.Equal(t, []string{TokenField, "a", "b"}, m.Fields())
	})

	t.Run("namespaced token spelling canonicalised", func(t *testing.T) {
		m := NormalizeFieldMask("places.nextPageToken,places.id")

		assert.Equal(t, []string{TokenField, "places.id"}, m.Fields())
	})

	t.Run("token kept in caller position when supplied", func(t *testing.T) {
		m := NormalizeFieldMask("places.id,nextPageToken,places.name")

		assert.Equal(t, []string{"places.id", TokenField, "places.name"}, m.Fields())
	})

	t.Run("token appears exactly once", func(t *testing.T) {
		m := NormalizeFieldMask("nextPageToken,places.nextPageToken,nextPageToken")

		count := 0
		for _, f := range m.Fields() {
			if f == TokenField {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("duplicates removed preserving first occurrence", func(t *testing.T) {
		m := NormalizeFieldMask("places.id,places.name,places.id,places.rating,places.name")

		assert.Equal(t, []string{TokenField, "places.id", "places.name", "places.rating"}, m.Fields())
	})
}

func TestFieldMask_Header(t *testing.T) {
	t.Run("joins fields with commas", func(t *testing.T) {
		m := NormalizeFieldMask("places.id,places.location")

		assert.Equal(t, "nextPageToken,places.id,places.location", m.Header())
	})
}

func TestFieldMask_Want(t *testing.T) {
	m := NormalizeFieldMask("places.id,location,places.rating")

	t.Run("matches namespaced field by bare key", func(t *testing.T) {
		assert.True(t, m.Want("id"))
		assert.True(t, m.Want("rating"))
	})

	t.Run("matches bare field by bare key", func(t *testing.T) {
		assert.True(t, m.Want("location"))
	})

	t.Run("matches exact spelling", func(t *testing.T) {
		assert.True(t, m.Want("places.id"))
	})

	t.Run("rejects unrequested field", func(t *testing.T) {
		assert.False(t, m.Want("websiteUri"))
	})
}

func TestFieldMask_PlaceFields(t *testing.T) {
	t.Run("strips prefix and drops token", func(t *testing.T) {
		m := NormalizeFieldMask("places.id,places.location,websiteUri")

		assert.Equal(t, []string{"id", "location", "websiteUri"}, m.PlaceFields())
	})

	t.Run("collapses duplicates across spellings", func(t *testing.T) {
		m := NormalizeFieldMask("places.location,location")

		assert.Equal(t, []string{"location"}, m.PlaceFields())
	})

	t.Run("token-only mask has no place fields", func(t *testing.T) {
		m := NormalizeFieldMask("")

		require.Empty(t, m.PlaceFields())
	})
}
