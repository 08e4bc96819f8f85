// Package config loads the repolens configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fernwick/repolens/internal/classify"
	"github.com/fernwick/repolens/internal/theme"
)

// AppConfig defines the global repolens configuration options. Command-line
// flags take precedence over config values, which take precedence over the
// defaults.
type AppConfig struct {
	MaxFileSize int64  `yaml:"max_file_size"` // size ceiling in bytes for rendered files
	SkipBloat   bool   `yaml:"skip_bloat"`    // skip lockfiles and dependency directories
	OpenViewer  bool   `yaml:"open_viewer"`   // open the written document in the system viewer
	OutputDir   string `yaml:"output_dir"`    // directory for derived output paths; empty means the system temp dir
	Theme       string `yaml:"theme"`         // picker/highlight theme name
	DebugLog    string `yaml:"debug_log"`     // debug log file path
	ShowIcons   bool   `yaml:"show_icons"`    // render file-type icons in the picker
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		MaxFileSize: classify.DefaultMaxBytes,
		SkipBloat:   true,
		OpenViewer:  true,
		Theme:       theme.DefaultName,
		ShowIcons:   true,
	}
}

// LoadConfig reads the configuration from configPath, or from the default
// locations under the user config directory when empty. A missing file is
// not an error; the defaults are returned.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{expanded}
	} else {
		base := filepath.Join(configDir(), "repolens")
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	cfg := DefaultConfig()
	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 -- path is the user's own config location
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return DefaultConfig(), fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
		}
		break
	}

	if theme.ByName(cfg.Theme) == nil {
		cfg.Theme = theme.DefaultName
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = classify.DefaultMaxBytes
	}
	return cfg, nil
}

// Policy derives the classification policy from the configuration.
func (c *AppConfig) Policy() classify.Policy {
	return classify.Policy{MaxBytes: c.MaxFileSize, SkipBloat: c.SkipBloat}
}

// NormalizeThemeName returns the canonical theme name, or "" when the name
// is not supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.ByName(name) != nil {
		return name
	}
	return ""
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
