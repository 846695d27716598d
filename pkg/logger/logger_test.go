package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithDefaults(t *testing.T) {
	log, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Info("hello", "key", "value")
	log.Debug("dropped at info level")
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{EnableFile: true}
	cfg.normalize()
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidOutputPath)

	cfg = &Config{}
	cfg.normalize()
	assert.ErrorIs(t, cfg.Validate(), ErrNoOutputEnabled)
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Level:      DebugLevel,
		Format:     JSONFormat,
		EnableFile: true,
		OutputPath: filepath.Join(dir, "test.log"),
	}
	log, err := New(cfg)
	require.NoError(t, err)

	log.Info("write to file", "n", 1)
	require.NoError(t, log.Sync())

	assert.FileExists(t, filepath.Join(dir, "test.log"))
}

func TestNamedAndWithFields(t *testing.T) {
	log, err := New(nil)
	require.NoError(t, err)

	named := log.Named("session")
	require.NotNil(t, named)

	derived := named.WithFields("player_uid", uint64(1337))
	require.NotNil(t, derived)
	derived.Info("derived logger works")
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("discarded")
	assert.Equal(t, log, log.Named("x"))
	assert.NoError(t, log.Sync())
}
