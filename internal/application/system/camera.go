package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portalhub/internal/ecs"
)

// CameraSystem keeps cameras on the player and applies wheel zoom
type CameraSystem struct {
	zoomStep float64
}

// NewCameraSystem creates a camera system
func NewCameraSystem(zoomStep float64) *CameraSystem {
	return &CameraSystem{zoomStep: zoomStep}
}

// SetZoomStep changes the scale change per wheel notch
func (s *CameraSystem) SetZoomStep(step float64) {
	s.zoomStep = step
}

// Follow copies the player's X/Y to every camera when the player moved
func (s *CameraSystem) Follow(w *ecs.World) {
	if w.PlayerID == 0 || !w.Changed(w.PlayerID) {
		return
	}
	p := w.Transform[w.PlayerID]
	for id := range w.IsCamera {
		cam := w.Transform[id]
		cam.X, cam.Y = p.X, p.Y
		w.SetTransform(id, cam)
	}
}

// Zoom grows every camera's scale by wheelY*zoomStep. Scale is not
// clamped and may reach zero or go negative.
func (s *CameraSystem) Zoom(w *ecs.World, wheelY float64) {
	if wheelY == 0 {
		return
	}
	for id := range w.IsCamera {
		cam := w.Transform[id]
		cam.ScaleX += wheelY * s.zoomStep
		cam.ScaleY += wheelY * s.zoomStep
		w.SetTransform(id, cam)
	}
}

// View returns the world-to-screen matrix for a camera. World Y points up,
// screen Y points down, and the camera sits at the screen center.
func View(cam ecs.Transform, screenW, screenH int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-cam.X, -cam.Y)
	g.Scale(1/cam.ScaleX, -1/cam.ScaleY)
	g.Translate(float64(screenW)/2, float64(screenH)/2)
	return g
}
