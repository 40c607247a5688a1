package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Config{Level: "debug", Format: FormatJSON}, &buf)
		require.NoError(t, err)
		logger.Debug().Str("token", "<->").Msg("registered")
		assert.Contains(t, buf.String(), `"message":"registered"`)
		assert.Contains(t, buf.String(), `"token":"<->"`)
	})

	t.Run("LevelFilters", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Config{Level: "WARN", Format: FormatJSON}, &buf)
		require.NoError(t, err)
		logger.Info().Msg("hidden")
		assert.Empty(t, buf.String())
		logger.Warn().Msg("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(Config{}, &buf)
		require.NoError(t, err)
		logger.Info().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := New(Config{Level: "loud"}, nil)
		assert.Error(t, err)
		_, err = New(Config{Format: "xml"}, nil)
		assert.Error(t, err)
	})
}
