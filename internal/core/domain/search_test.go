package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	t.Run("accepts known formats", func(t *testing.T) {
		for _, s := range []string{"csv", "json", "both"} {
			f, err := ParseOutputFormat(s)
			require.NoError(t, err)
			assert.Equal(t, OutputFormat(s), f)
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := ParseOutputFormat("xml")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects empty format", func(t *testing.T) {
		_, err := ParseOutputFormat("")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestOutputFormat_Wants(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		assert.True(t, FormatCSV.WantsCSV())
		assert.False(t, FormatCSV.WantsJSON())
	})

	t.Run("json", func(t *testing.T) {
		assert.False(t, FormatJSON.WantsCSV())
		assert.True(t, FormatJSON.WantsJSON())
	})

	t.Run("both", func(t *testing.T) {
		assert.True(t, FormatBoth.WantsCSV())
		assert.True(t, FormatBoth.WantsJSON())
	})
}
