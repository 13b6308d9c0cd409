package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Run("lowercases and dashes separators", func(t *testing.T) {
		assert.Equal(t, "coffee-in-buenos-aires", Slugify("Coffee in Buenos Aires"))
	})

	t.Run("collapses dash runs and trims", func(t *testing.T) {
		assert.Equal(t, "a-b", Slugify("  a -- b  "))
	})

	t.Run("drops unrecognised punctuation", func(t *testing.T) {
		assert.Equal(t, "cafés-palermo", Slugify("cafés?? (palermo)!"))
	})

	t.Run("empty input falls back", func(t *testing.T) {
		assert.Equal(t, "query", Slugify("???"))
	})
}

func TestFileBase(t *testing.T) {
	at := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "places_text_nightclubs-in-palermo_20250601_150405",
		FileBase("Nightclubs in Palermo", at))
}
