package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/filemonitor/pkg/log"
)

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "info", "json")
		require.NoError(t, err)

		logger := slog.New(h)
		logger.Debug("hidden")
		logger.Info("resolved", "path", "/opt/app/data.txt")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "resolved", entry["msg"])
		assert.Equal(t, "/opt/app/data.txt", entry["path"])
	})
	t.Run("logfmt", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "debug", "logfmt")
		require.NoError(t, err)

		slog.New(h).Debug("ready")
		assert.Contains(t, buf.String(), "msg=ready")
	})
	t.Run("level filter", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		h, err := log.CreateHandler(buf, "warn", "text")
		require.NoError(t, err)

		slog.New(h).Info("quiet")
		assert.Empty(t, buf.String())
	})
	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandler(&bytes.Buffer{}, "loud", "text")
		require.ErrorIs(t, err, log.ErrUnknownLevel)
	})
	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandler(&bytes.Buffer{}, "info", "xml")
		require.ErrorIs(t, err, log.ErrUnknownFormat)
	})
}
