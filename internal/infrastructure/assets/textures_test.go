package assets

import (
	"testing"
	"testing/fstest"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/infrastructure/config"
)

func TestSprites(t *testing.T) {
	sprites := Sprites(config.Default().Sprites)

	player, ok := sprites[material.Player]
	require.True(t, ok)
	assert.Equal(t, material.Player, player.Material)
	assert.Equal(t, cp.Vector{X: 24, Y: 24}, player.Size)

	missile := sprites[material.Missile]
	assert.Equal(t, cp.Vector{X: 8, Y: 16}, missile.Size)
}

func TestLoadTextures_MissingFile(t *testing.T) {
	cfg := map[string]config.SpriteConfig{
		"player": {Image: "nope.png", Width: 1, Height: 1},
	}

	_, err := LoadTextures(fstest.MapFS{}, cfg)
	assert.ErrorIs(t, err, ErrMissingTexture)
}

func TestTextures_GetMissing(t *testing.T) {
	_, err := Textures{}.Get(material.Spikes)
	assert.ErrorIs(t, err, ErrMissingTexture)
}
