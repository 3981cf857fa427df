// Package config loads the application's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable application settings. Canvas dimensions are
// fixed for the lifetime of a surface; changing them only affects newly
// created canvases.
type Config struct {
	CanvasWidth  int    `toml:"canvas_width"`
	CanvasHeight int    `toml:"canvas_height"`
	StoreDir     string `toml:"store_dir"`
	StylerURL    string `toml:"styler_url"`
	Discover     bool   `toml:"discover"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Discover:     true,
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. A present-but-malformed file is an error; silently drawing
// on a misconfigured canvas would be worse than failing at startup.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.CanvasWidth < 1 || cfg.CanvasHeight < 1 {
		return Config{}, fmt.Errorf("config: canvas dimensions must be positive, got %dx%d",
			cfg.CanvasWidth, cfg.CanvasHeight)
	}
	return cfg, nil
}

// DefaultPath returns the per-user location of the config file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locating user config dir: %w", err)
	}
	return filepath.Join(dir, "pixelpad", "config.toml"), nil
}

// DefaultStoreDir returns the per-user location of the persistence store.
func DefaultStoreDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locating user config dir: %w", err)
	}
	return filepath.Join(dir, "pixelpad", "store"), nil
}
