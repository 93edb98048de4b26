package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/ecs"
)

// ErrLevelNotImplemented is returned when a level has no content yet
var ErrLevelNotImplemented = errors.New("level not implemented")

// Draw order
const (
	zGround = 0.0
	zProps  = 0.5
	zActors = 1.0
)

// tile is a tile-grid coordinate
type tile struct{ i, j int }

// Hub layout, in tile coordinates
var (
	hubPortals = []struct {
		at   tile
		dest level.Kind
	}{
		{tile{6, 0}, level.Level1},
		{tile{-7, -5}, level.Secret1},
	}
	hubSpikes = []tile{{-1, 1}, {-1, 2}, {-3, -1}}
)

// Spawner populates the world for a level
type Spawner struct {
	sprites     map[material.ID]ecs.Sprite
	cameraScale float64
	logger      *log.Logger
}

// NewSpawner creates a spawner drawing sprites from the given table.
// cameraScale is the initial scale of a newly created camera.
func NewSpawner(sprites map[material.ID]ecs.Sprite, cameraScale float64, logger *log.Logger) *Spawner {
	return &Spawner{
		sprites:     sprites,
		cameraScale: cameraScale,
		logger:      logger,
	}
}

// Spawn creates the camera (if missing), the player at the origin, the
// ground grid with its collidable border ring, and the level's decoration.
// The world is left untouched when the level has no content or a sprite
// is missing.
func (s *Spawner) Spawn(w *ecs.World, lvl level.Level) error {
	deco, err := s.decorator(lvl.Kind)
	if err != nil {
		return err
	}

	sprites, err := s.resolve(append([]material.ID{
		material.Player, material.Ground, material.TransparentGround,
	}, deco.sprites...))
	if err != nil {
		return err
	}

	if _, _, ok := w.Camera(); !ok {
		cam := ecs.NewTransform(0, 0)
		cam.ScaleX, cam.ScaleY = s.cameraScale, s.cameraScale
		w.CreateCamera(cam)
	}

	pt := ecs.NewTransform(0, 0)
	pt.Z = zActors
	w.CreatePlayer(pt, sprites[material.Player])

	spawnGround(w, lvl, sprites[material.Ground], sprites[material.TransparentGround])
	deco.place(w, sprites)

	s.logger.Info("level spawned", "level", lvl.Kind, "entities", len(w.Transform))
	return nil
}

// decoration is the level-specific content and the sprites it needs
type decoration struct {
	sprites []material.ID
	place   func(w *ecs.World, sprites map[material.ID]ecs.Sprite)
}

func (s *Spawner) decorator(kind level.Kind) (decoration, error) {
	switch kind {
	case level.Hub:
		return decoration{
			sprites: []material.ID{material.Portal, material.Spikes},
			place:   decorateHub,
		}, nil
	default:
		return decoration{}, fmt.Errorf("%w: %s", ErrLevelNotImplemented, kind)
	}
}

// spawnGround fills cols x rows cells centered on the origin and surrounds
// them with a one-tile collidable ring
func spawnGround(w *ecs.World, lvl level.Level, ground, border ecs.Sprite) {
	cols, rows := lvl.Columns(), lvl.Rows()
	minI, maxI := -cols/2, cols-cols/2-1
	minJ, maxJ := -rows/2, rows-rows/2-1

	for j := minJ; j <= maxJ; j++ {
		for i := minI; i <= maxI; i++ {
			w.CreateTile(tileTransform(tile{i, j}, zGround), ground, false)
		}
	}

	for i := minI - 1; i <= maxI+1; i++ {
		w.CreateTile(tileTransform(tile{i, minJ - 1}, zGround), border, true)
		w.CreateTile(tileTransform(tile{i, maxJ + 1}, zGround), border, true)
	}
	for j := minJ; j <= maxJ; j++ {
		w.CreateTile(tileTransform(tile{minI - 1, j}, zGround), border, true)
		w.CreateTile(tileTransform(tile{maxI + 1, j}, zGround), border, true)
	}
}

func decorateHub(w *ecs.World, sprites map[material.ID]ecs.Sprite) {
	for _, p := range hubPortals {
		w.CreatePortal(tileTransform(p.at, zProps), sprites[material.Portal], ecs.Portal{Destination: p.dest})
	}
	for _, at := range hubSpikes {
		w.CreateSpikes(tileTransform(at, zProps), sprites[material.Spikes])
	}
}

// resolve looks up every sprite before anything is created
func (s *Spawner) resolve(ids []material.ID) (map[material.ID]ecs.Sprite, error) {
	out := make(map[material.ID]ecs.Sprite, len(ids))
	for _, id := range ids {
		sp, err := s.sprite(id)
		if err != nil {
			return nil, err
		}
		out[id] = sp
	}
	return out, nil
}

func (s *Spawner) sprite(id material.ID) (ecs.Sprite, error) {
	sp, ok := s.sprites[id]
	if !ok {
		return ecs.Sprite{}, fmt.Errorf("spawner: no sprite configured for %s", id)
	}
	return sp, nil
}

func tileTransform(at tile, z float64) ecs.Transform {
	t := ecs.NewTransform(float64(at.i)*level.TileSize, float64(at.j)*level.TileSize)
	t.Z = z
	return t
}
