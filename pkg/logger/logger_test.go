package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return the attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: DebugLevel, Output: &buf})
		ctx := ContextWithLogger(context.Background(), log)
		got := FromContext(ctx)
		got.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "value")
	})
	t.Run("Should fall back to a default logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
		assert.NotNil(t, FromContext(nil)) //nolint:staticcheck
	})
}

func TestLevels(t *testing.T) {
	t.Run("Should suppress entries below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: WarnLevel, Output: &buf})
		log.Info("quiet")
		log.Warn("loud")
		out := buf.String()
		assert.NotContains(t, out, "quiet")
		assert.Contains(t, out, "loud")
	})
}

func TestJSONFormat(t *testing.T) {
	t.Run("Should emit JSON when configured", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: InfoLevel, JSON: true, Output: &buf})
		log.Info("structured", "count", 3)
		require.NotEmpty(t, buf.String())
		assert.Contains(t, buf.String(), `"msg":"structured"`)
	})
}

func TestWith(t *testing.T) {
	t.Run("Should carry bound key-value pairs", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: InfoLevel, Output: &buf}).With("component", "migration")
		log.Info("bound")
		assert.Contains(t, buf.String(), "migration")
	})
}
