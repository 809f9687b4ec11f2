// Package config loads user defaults for spath.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "spath"

// Config holds defaults used when wrapping a path in an SVG document.
type Config struct {
	Stroke      string  `koanf:"stroke"`       // e.g. "black", "#ff0000"
	Fill        string  `koanf:"fill"`         // "none" for outlines only
	StrokeWidth float64 `koanf:"stroke_width"` // default: 1
	Width       float64 `koanf:"width"`        // viewBox width (default: 100)
	Height      float64 `koanf:"height"`       // viewBox height (default: 100)

	// ShapesDir is scanned for *.toml shapes (see shape.LoadDir).
	ShapesDir string `koanf:"shapes_dir"`
}

// Load reads config files in order of priority (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files, skipping the missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, fmt.Errorf("cant access config %s: %w", path, err)
		}

		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("cant load config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ShapesDir = expandPath(cfg.ShapesDir)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/spath/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./spath.toml (pwd, highest priority)
		"spath.toml",
	}
}

// DefaultShapesDir is used when shapes_dir is not set.
func DefaultShapesDir() string {
	return filepath.Join(xdg.DataHome, appName, "shapes")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}

	return path
}

// Defaults returns the configuration with defaults applied.
func (c *Config) Defaults() Config {
	cfg := *c

	if cfg.Stroke == "" {
		cfg.Stroke = "black"
	}
	if cfg.Fill == "" {
		cfg.Fill = "none"
	}
	if cfg.StrokeWidth <= 0 {
		cfg.StrokeWidth = 1
	}
	if cfg.Width <= 0 {
		cfg.Width = 100
	}
	if cfg.Height <= 0 {
		cfg.Height = 100
	}
	if cfg.ShapesDir == "" {
		cfg.ShapesDir = DefaultShapesDir()
	}

	return cfg
}
