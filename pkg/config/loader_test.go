package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Server struct {
		Endpoint     string `mapstructure:"endpoint"`
		SkipTutorial bool   `mapstructure:"skip_tutorial"`
	} `mapstructure:"server"`
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoadFile(t *testing.T) {
	path := writeTestConfig(t, `
server:
  endpoint: "127.0.0.1:10301"
  skip_tutorial: true
`)

	loader := NewLoader()
	require.NoError(t, loader.LoadFile(path, "yaml"))

	var cfg testConfig
	require.NoError(t, loader.Unmarshal(&cfg))
	assert.Equal(t, "127.0.0.1:10301", cfg.Server.Endpoint)
	assert.True(t, cfg.Server.SkipTutorial)
}

func TestLoaderUnmarshalKey(t *testing.T) {
	path := writeTestConfig(t, `
server:
  endpoint: "0.0.0.0:20100"
`)

	loader := NewLoader()
	require.NoError(t, loader.LoadFile(path, "yaml"))

	var server struct {
		Endpoint string `mapstructure:"endpoint"`
	}
	require.NoError(t, loader.UnmarshalKey("server", &server))
	assert.Equal(t, "0.0.0.0:20100", server.Endpoint)
}

func TestLoaderMissingFile(t *testing.T) {
	loader := NewLoader()
	assert.Error(t, loader.LoadFile("/nonexistent/path.yaml", "yaml"))
}

func TestWatcherInitialLoad(t *testing.T) {
	path := writeTestConfig(t, `
server:
  endpoint: "127.0.0.1:10301"
`)

	w, err := NewWatcher[testConfig](path, "yaml")
	require.NoError(t, err)

	cfg := w.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "127.0.0.1:10301", cfg.Server.Endpoint)
}
