package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file read by the loader
const FileName = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// Load reads game.yaml on top of Default. A missing file yields the defaults;
// fields absent from the file keep their default values.
func (l *Loader) Load() (*GameConfig, error) {
	cfg := Default()

	data, err := fs.ReadFile(l.fsys, FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", c.Window.Framerate)
	}
	if c.Collision.Tolerance <= 0 {
		return fmt.Errorf("collision tolerance must be positive, got %v", c.Collision.Tolerance)
	}
	for name, s := range c.Sprites {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("sprite %q must have a positive size", name)
		}
	}
	return nil
}
