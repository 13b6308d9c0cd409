package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Set(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		r := NewRecord()
		r.Set("b", 1)
		r.Set("a", 2)
		r.Set("c", 3)

		assert.Equal(t, []string{"b", "a", "c"}, r.Columns())
	})

	t.Run("overwrite keeps original position", func(t *testing.T) {
		r := NewRecord()
		r.Set("a", 1)
		r.Set("b", 2)
		r.Set("a", 3)

		assert.Equal(t, []string{"a", "b"}, r.Columns())
		v, ok := r.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("nil is a present value", func(t *testing.T) {
		r := NewRecord()
		r.Set("a", nil)

		v, ok := r.Get("a")
		assert.True(t, ok)
		assert.Nil(t, v)
		assert.True(t, r.Has("a"))
	})
}

func TestRecord_SetOnce(t *testing.T) {
	t.Run("first writer wins", func(t *testing.T) {
		r := NewRecord()
		r.SetOnce("a", "first")
		r.SetOnce("a", "second")

		v, _ := r.Get("a")
		assert.Equal(t, "first", v)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("nil first write blocks later writes", func(t *testing.T) {
		r := NewRecord()
		r.SetOnce("a", nil)
		r.SetOnce("a", "second")

		v, ok := r.Get("a")
		assert.True(t, ok)
		assert.Nil(t, v)
	})
}

func TestRecord_Get(t *testing.T) {
	t.Run("absent column", func(t *testing.T) {
		r := NewRecord()

		v, ok := r.Get("missing")
		assert.False(t, ok)
		assert.Nil(t, v)
		assert.False(t, r.Has("missing"))
	})
}
