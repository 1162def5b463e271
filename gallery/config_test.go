package gallery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/lewtec/galeria/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		path := writeConfig(t, "meta:\n  title: Test\n")
		config, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "Test", config.Meta.Title)
		assert.Equal(t, ":8080", config.Server.Addr)
		assert.Equal(t, BackendSQLite, config.Storage.Backend)
		assert.Equal(t, domain.DefaultSlotKey, config.Storage.Key)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "gallery.db"), config.Storage.Path)
		assert.Equal(t, int64(defaultMaxUploadBytes), config.Upload.MaxBytes)
		assert.True(t, config.SeedEnabled())
	})

	t.Run("reads every section", func(t *testing.T) {
		path := writeConfig(t, `
server:
  addr: ":9090"
storage:
  backend: file
  path: /tmp/gallery.json
  key: other
upload:
  max_bytes: 1024
seed: false
log:
  level: debug
`)
		config, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", config.Server.Addr)
		assert.Equal(t, BackendFile, config.Storage.Backend)
		assert.Equal(t, "/tmp/gallery.json", config.Storage.Path)
		assert.Equal(t, "other", config.Storage.Key)
		assert.Equal(t, int64(1024), config.Upload.MaxBytes)
		assert.False(t, config.SeedEnabled())
		assert.Equal(t, "debug", config.Log.Level)
	})

	t.Run("rejects unknown backends", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  backend: floppy\n")
		_, err := LoadConfig(path)
		assert.True(t, errors.Is(err, ErrUnknownBackend), "got %v", err)
	})

	t.Run("redis needs an url", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  backend: redis\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(ConfigLog{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger(ConfigLog{Level: "loud"})
	assert.Error(t, err)
}
