// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.paneterm.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-configurable settings.
type Config struct {
	// DefaultShell is the command spawned for new panes. Empty means $SHELL.
	DefaultShell string `yaml:"default_shell"`

	// DefaultDir is the working directory for new panes.
	// Empty means the current working directory at launch time.
	DefaultDir string `yaml:"default_dir"`

	// Theme selects the border colour palette: "dark", "light", or "dracula".
	Theme string `yaml:"theme"`

	// MaxPanes bounds how many panes the layout engine keeps at once; the
	// lowest-id pane is evicted once a new split would exceed it. 0 means
	// unlimited.
	MaxPanes int `yaml:"max_panes"`

	// ViewportCols/ViewportRows set the Screen size for the whole session;
	// later terminal resizes are not applied to it.
	ViewportCols int `yaml:"viewport_cols"`
	ViewportRows int `yaml:"viewport_rows"`

	// ResizeStepCols/ResizeStepRows are loaded and clamped but not passed to
	// the layout engine, whose ResizeLeft/Right/Up/Down use fixed steps of
	// 10 columns and 2 rows.
	ResizeStepCols int `yaml:"resize_step_cols"`
	ResizeStepRows int `yaml:"resize_step_rows"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultShell:   "",
		DefaultDir:     "",
		Theme:          "dark",
		MaxPanes:       12,
		ViewportCols:   80,
		ViewportRows:   24,
		ResizeStepCols: 10,
		ResizeStepRows: 2,
	}
}

// configPath returns the path to ~/.paneterm.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paneterm.yaml")
}

// Load reads the config file, falling back to defaults for missing fields.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		// No config file yet – write defaults for future editing
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// Apply sensible bounds
	if cfg.MaxPanes < 0 {
		cfg.MaxPanes = 0
	}
	if cfg.ViewportCols < 1 {
		cfg.ViewportCols = 80
	}
	if cfg.ViewportRows < 1 {
		cfg.ViewportRows = 24
	}
	if cfg.ResizeStepCols < 1 {
		cfg.ResizeStepCols = 10
	}
	if cfg.ResizeStepRows < 1 {
		cfg.ResizeStepRows = 2
	}

	// Validate theme name
	validThemes := map[string]bool{"dark": true, "light": true, "dracula": true}
	if !validThemes[cfg.Theme] {
		cfg.Theme = "dark"
	}

	return cfg
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# paneterm configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
