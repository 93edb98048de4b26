package ecs

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/portalhub/internal/domain/collision"
	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/domain/material"
)

// Transform is an entity's placement in world space (Y up).
// Rotation is in radians, counter-clockwise.
type Transform struct {
	X, Y, Z  float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// NewTransform returns an unrotated, unscaled transform at x, y
func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Pos returns the translation as a vector
func (t Transform) Pos() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

// Sprite references a material and its drawn size in world units
type Sprite struct {
	Material material.ID
	Size     cp.Vector
}

// Half returns the sprite's half extents
func (s Sprite) Half() cp.Vector {
	return s.Size.Mult(0.5)
}

// Missile holds projectile motion. Direction is normalized; Speed scales it
// per axis every frame.
type Missile struct {
	Direction cp.Vector
	Speed     cp.Vector
}

// Step returns the per-frame displacement
func (m Missile) Step() cp.Vector {
	return cp.Vector{X: m.Direction.X * m.Speed.X, Y: m.Direction.Y * m.Speed.Y}
}

// Portal carries the level a portal leads to
type Portal struct {
	Destination level.Kind
}

// Bounds returns the collision box of an entity from its transform and sprite
func Bounds(t Transform, s Sprite) collision.Box {
	return collision.NewBox(t.Pos(), s.Size)
}
