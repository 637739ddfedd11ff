package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/forgeline/tsbridge/internal/adapters/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "sitter", cfg.Backend)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_File(t *testing.T) {
	content := `
logLevel: debug
silent: true
backend: sitter
watch:
  enabled: true
  roots: ["src"]
  debounceMs: 50
`
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.DefaultFilename), []byte(content), 0o600))

	cfg, err := config.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.Silent)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, []string{"src"}, cfg.Watch.Roots)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_InvalidLevel(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, config.DefaultFilename),
		[]byte("logLevel: loud\n"), 0o600))

	_, err := config.Load(tmpDir)
	require.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tmpDir, config.DefaultFilename),
		[]byte("logLevel: [unclosed\n"), 0o600))

	_, err := config.Load(tmpDir)
	require.Error(t, err)
}
