// Package assets resolves named image files into drawable textures.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/ecs"
	"github.com/younwookim/portalhub/internal/infrastructure/config"
)

// ErrMissingTexture is returned when a material has no loaded image
var ErrMissingTexture = errors.New("assets: missing texture")

// Sprites converts sprite config into ECS sprites keyed by material
func Sprites(cfg map[string]config.SpriteConfig) map[material.ID]ecs.Sprite {
	out := make(map[material.ID]ecs.Sprite, len(cfg))
	for name, s := range cfg {
		id := material.ID(name)
		out[id] = ecs.Sprite{
			Material: id,
			Size:     cp.Vector{X: s.Width, Y: s.Height},
		}
	}
	return out
}

// Textures maps materials to their images
type Textures map[material.ID]*ebiten.Image

// LoadTextures reads every configured image from fsys.
// Files are processed in name order so errors are deterministic.
func LoadTextures(fsys fs.FS, cfg map[string]config.SpriteConfig) (Textures, error) {
	names := make([]string, 0, len(cfg))
	for name := range cfg {
		names = append(names, name)
	}
	sort.Strings(names)

	textures := make(Textures, len(cfg))
	for _, name := range names {
		path := cfg[name].Image
		if _, err := fs.Stat(fsys, path); err != nil {
			return nil, fmt.Errorf("%w: %s (%s): %w", ErrMissingTexture, name, path, err)
		}
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		textures[material.ID(name)] = img
	}
	return textures, nil
}

// Get returns the image for id
func (t Textures) Get(id material.ID) (*ebiten.Image, error) {
	img, ok := t[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTexture, id)
	}
	return img, nil
}
