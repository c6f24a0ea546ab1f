package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("Should generate unique non-empty IDs", func(t *testing.T) {
		a, err := NewID()
		require.NoError(t, err)
		b, err := NewID()
		require.NoError(t, err)
		assert.False(t, a.IsZero())
		assert.NotEqual(t, a, b)
	})
}

func TestParseID(t *testing.T) {
	t.Run("Should round-trip a generated ID", func(t *testing.T) {
		id := MustNewID()
		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})
	t.Run("Should reject empty string", func(t *testing.T) {
		_, err := ParseID("")
		assert.Error(t, err)
	})
	t.Run("Should reject malformed ID", func(t *testing.T) {
		_, err := ParseID("not-a-uuid")
		assert.Error(t, err)
	})
}
