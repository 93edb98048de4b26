package replay

import "github.com/younwookim/portalhub/internal/infrastructure/config"

// Tunables are the gameplay settings a session ran with. A replay needs
// them to reproduce the same world from the same input.
type Tunables struct {
	CameraScale     float64 `json:"cameraScale"`
	ZoomStep        float64 `json:"zoomStep"`
	MoveDelta       float64 `json:"moveDelta"`
	MissileSpeedX   float64 `json:"missileSpeedX"`
	MissileSpeedY   float64 `json:"missileSpeedY"`
	Tolerance       float64 `json:"tolerance"`
	BrightnessDelta float64 `json:"brightnessDelta"`
	DebugStep       float64 `json:"debugStep"`
}

// TunablesChange is a config reload that took effect before frame F
type TunablesChange struct {
	F        int      `json:"f"`
	Tunables Tunables `json:"tunables"`
}

// TunablesFrom captures the gameplay settings of cfg
func TunablesFrom(cfg *config.GameConfig) Tunables {
	return Tunables{
		CameraScale:     cfg.Camera.InitialScale,
		ZoomStep:        cfg.Camera.ZoomStep,
		MoveDelta:       cfg.Movement.Delta,
		MissileSpeedX:   cfg.Missile.Speed.X,
		MissileSpeedY:   cfg.Missile.Speed.Y,
		Tolerance:       cfg.Collision.Tolerance,
		BrightnessDelta: cfg.Brightness.Delta,
		DebugStep:       cfg.Brightness.DebugStep,
	}
}

// Apply returns a copy of cfg with these settings
func (t Tunables) Apply(cfg *config.GameConfig) *config.GameConfig {
	out := *cfg
	out.Camera.InitialScale = t.CameraScale
	out.Camera.ZoomStep = t.ZoomStep
	out.Movement.Delta = t.MoveDelta
	out.Missile.Speed = config.VectorConfig{X: t.MissileSpeedX, Y: t.MissileSpeedY}
	out.Collision.Tolerance = t.Tolerance
	out.Brightness.Delta = t.BrightnessDelta
	out.Brightness.DebugStep = t.DebugStep
	return &out
}
