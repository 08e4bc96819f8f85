package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwick/repolens/internal/classify"
	"github.com/fernwick/repolens/internal/theme"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, int64(classify.DefaultMaxBytes), cfg.MaxFileSize)
	assert.True(t, cfg.SkipBloat)
	assert.True(t, cfg.OpenViewer)
	assert.True(t, cfg.ShowIcons)
	assert.Equal(t, theme.DefaultName, cfg.Theme)
	assert.Empty(t, cfg.OutputDir)
	assert.Empty(t, cfg.DebugLog)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"max_file_size: 1024\nskip_bloat: false\ntheme: monokai\n",
	), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), cfg.MaxFileSize)
	assert.False(t, cfg.SkipBloat)
	assert.Equal(t, theme.MonokaiName, cfg.Theme)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.OpenViewer)
	assert.True(t, cfg.ShowIcons)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_file_size: [not a number\n"), 0o600))

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon-zebra\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultName, cfg.Theme)
}

func TestPolicy(t *testing.T) {
	cfg := &AppConfig{MaxFileSize: 2048, SkipBloat: false}
	policy := cfg.Policy()
	assert.Equal(t, int64(2048), policy.MaxBytes)
	assert.False(t, policy.SkipBloat)
}

func TestNormalizeThemeName(t *testing.T) {
	assert.Equal(t, "dracula", NormalizeThemeName("  Dracula "))
	assert.Equal(t, "nord", NormalizeThemeName("nord"))
	assert.Empty(t, NormalizeThemeName("unknown"))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/logs/debug.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "debug.log"), got)

	got, err = ExpandPath("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)
}
