package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/ecs"
	"github.com/younwookim/portalhub/internal/infrastructure/assets"
	"github.com/younwookim/portalhub/internal/infrastructure/config"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testSprites() map[material.ID]ecs.Sprite {
	return assets.Sprites(config.Default().Sprites)
}

// createTestHub spawns the hub and clears change marks, as after one frame
func createTestHub(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	require.NoError(t, NewSpawner(testSprites(), 1, testLogger()).Spawn(w, level.NewHub()))
	w.ClearChanged()
	return w
}

// movePlayer places the player at x, y and marks it changed
func movePlayer(w *ecs.World, x, y float64) {
	p := w.Transform[w.PlayerID]
	p.X, p.Y = x, y
	w.SetTransform(w.PlayerID, p)
}
