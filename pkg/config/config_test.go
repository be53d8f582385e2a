package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ExportDir)
	assert.Equal(t, "", cfg.LibraryFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RawCSV)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MANGATRACKER_EXPORT_DIR", "/tmp/exports")
	t.Setenv("MANGATRACKER_LIBRARY_FILE", "library.json")
	t.Setenv("MANGATRACKER_LOG_LEVEL", "debug")
	t.Setenv("MANGATRACKER_CSV_RAW", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
	assert.Equal(t, "library.json", cfg.LibraryFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.RawCSV)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MANGATRACKER_LOG_FILE=tracker.log\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("MANGATRACKER_LOG_FILE") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tracker.log", cfg.LogFile)
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MANGATRACKER_LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
