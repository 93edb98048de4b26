package system

import (
	"math"

	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/ecs"
)

// MovementSystem moves the player from held WASD keys
type MovementSystem struct {
	delta float64 // world units per second
}

// NewMovementSystem creates a movement system
func NewMovementSystem(delta float64) *MovementSystem {
	return &MovementSystem{delta: delta}
}

// SetDelta changes the movement speed
func (s *MovementSystem) SetDelta(delta float64) {
	s.delta = delta
}

// Update applies delta*dt per held key. Keys add up, so diagonals are
// faster than straight moves. Each direction clamps to the level bounds on
// its own.
func (s *MovementSystem) Update(w *ecs.World, lvl level.Level, input InputState, dt float64) {
	t, ok := w.Player()
	if !ok {
		return
	}
	bounds := lvl.Bounds(w.Sprite[w.PlayerID].Half())
	step := s.delta * dt

	x, y := t.X, t.Y
	if input.Up {
		y = math.Min(y+step, bounds.T)
	}
	if input.Left {
		x = math.Max(x-step, bounds.L)
	}
	if input.Down {
		y = math.Max(y-step, bounds.B)
	}
	if input.Right {
		x = math.Min(x+step, bounds.R)
	}

	if x == t.X && y == t.Y {
		return
	}
	t.X, t.Y = x, y
	w.SetTransform(w.PlayerID, t)
}
