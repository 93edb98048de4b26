package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/portalhub/internal/ecs"
)

// MissileSystem spawns missiles toward the cursor and moves them
type MissileSystem struct {
	sprite  ecs.Sprite
	speed   cp.Vector
	screenW int
	screenH int
	logger  *log.Logger
}

// NewMissileSystem creates a missile system
func NewMissileSystem(sprite ecs.Sprite, speed cp.Vector, screenW, screenH int, logger *log.Logger) *MissileSystem {
	return &MissileSystem{
		sprite:  sprite,
		speed:   speed,
		screenW: screenW,
		screenH: screenH,
		logger:  logger,
	}
}

// SetSpeed changes the speed given to new missiles
func (s *MissileSystem) SetSpeed(speed cp.Vector) {
	s.speed = speed
}

// Fire spawns a missile when the fire input is set. It returns the new
// entity, or 0 when nothing was fired.
func (s *MissileSystem) Fire(w *ecs.World, input InputState) ecs.EntityID {
	if !input.Fire {
		return 0
	}
	if !input.CursorOK {
		s.logger.Error("cannot fire: cursor position unavailable")
		return 0
	}
	player, ok := w.Player()
	if !ok {
		return 0
	}
	_, cam, ok := w.Camera()
	if !ok {
		s.logger.Error("cannot fire: no camera")
		return 0
	}

	view := View(cam, s.screenW, s.screenH)
	if cam.ScaleX == 0 || cam.ScaleY == 0 || !view.IsInvertible() {
		s.logger.Error("cannot fire: camera scale is degenerate", "scaleX", cam.ScaleX, "scaleY", cam.ScaleY)
		return 0
	}
	view.Invert()
	cx, cy := view.Apply(input.CursorX, input.CursorY)

	dir := cp.Vector{X: cx - player.X, Y: cy - player.Y}
	if dir.LengthSq() == 0 {
		return 0
	}
	dir = dir.Normalize()

	angle := FiringAngle(dir)
	radius := w.Sprite[w.PlayerID].Size.Y/2 + s.sprite.Size.Y/2
	offset := cp.ForAngle(angle).Mult(radius)

	t := ecs.NewTransform(player.X+offset.X, player.Y+offset.Y)
	t.Z = zActors
	// the sprite points up at rotation 0
	t.Rotation = angle - math.Pi/2

	id := w.CreateMissile(t, s.sprite, ecs.Missile{Direction: dir, Speed: s.speed})
	s.logger.Debug("missile fired", "id", id, "angle", angle)
	return id
}

// FiringAngle returns the angle of dir in radians, in (-pi/2, 3pi/2)
func FiringAngle(dir cp.Vector) float64 {
	angle := math.Atan(dir.Y / dir.X)
	if dir.X < 0 {
		angle += math.Pi
	}
	return angle
}

// Advance moves every missile by its per-frame step. Motion is per frame,
// not scaled by frame time.
func (s *MissileSystem) Advance(w *ecs.World) {
	for id := range w.IsMissile {
		t := w.Transform[id]
		step := w.Missile[id].Step()
		t.X += step.X
		t.Y += step.Y
		w.SetTransform(id, t)
	}
}
