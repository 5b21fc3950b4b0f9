package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/linkaudit"
	laslog "github.com/fwojciec/linkaudit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	t.Run("accepts level names in any case", func(t *testing.T) {
		t.Parallel()

		for name, want := range map[string]slog.Level{
			"debug": slog.LevelDebug,
			"INFO":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"Error": slog.LevelError,
		} {
			got, err := laslog.ParseLevel(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		_, err := laslog.ParseLevel("loud")

		assert.Equal(t, linkaudit.EINVALID, linkaudit.ErrorCode(err))
	})
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("filters records below level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(laslog.NewHandler(&buf, slog.LevelWarn))

		logger.Info("hidden")
		logger.Warn("shown", "url", "https://example.com")

		output := buf.String()
		assert.NotContains(t, output, "hidden")
		assert.Contains(t, output, "shown")
		assert.Contains(t, output, "url=https://example.com")
	})
}
