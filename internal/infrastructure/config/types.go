package config

import "github.com/jakecoffman/cp"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Window     WindowConfig            `yaml:"window"`
	Camera     CameraConfig            `yaml:"camera"`
	Movement   MovementConfig          `yaml:"movement"`
	Missile    MissileConfig           `yaml:"missile"`
	Collision  CollisionConfig         `yaml:"collision"`
	Brightness BrightnessConfig        `yaml:"brightness"`
	Console    ConsoleConfig           `yaml:"console"`
	Sprites    map[string]SpriteConfig `yaml:"sprites"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Framerate int    `yaml:"framerate"`
	Resizable bool   `yaml:"resizable"`
}

type CameraConfig struct {
	InitialScale float64 `yaml:"initialScale"` // world units per screen pixel
	ZoomStep     float64 `yaml:"zoomStep"`     // scale change per wheel notch
}

type MovementConfig struct {
	Delta float64 `yaml:"delta"` // world units per second
}

type MissileConfig struct {
	Speed VectorConfig `yaml:"speed"` // per-axis multiplier, world units per frame
}

type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vector converts to a cp.Vector
func (v VectorConfig) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type CollisionConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

type BrightnessConfig struct {
	Delta     float64 `yaml:"delta"`     // darkening per spike hit
	DebugStep float64 `yaml:"debugStep"` // Period/Comma adjustment
}

type ConsoleConfig struct {
	MaxLines int `yaml:"maxLines"`
}

// SpriteConfig maps a material to its image file and drawn size (world units)
type SpriteConfig struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Portal Hub",
			Framerate: 60,
			Resizable: true,
		},
		Camera: CameraConfig{
			InitialScale: 0.3,
			ZoomStep:     0.05,
		},
		Movement:   MovementConfig{Delta: 100},
		Missile:    MissileConfig{Speed: VectorConfig{X: 1, Y: 1}},
		Collision:  CollisionConfig{Tolerance: 2.1},
		Brightness: BrightnessConfig{Delta: 0.1, DebugStep: 0.05},
		Console:    ConsoleConfig{MaxLines: 10},
		Sprites: map[string]SpriteConfig{
			"player":             {Image: "bird.png", Width: 24, Height: 24},
			"ground":             {Image: "ground.png", Width: 32, Height: 32},
			"transparent_ground": {Image: "transparent_ground.png", Width: 32, Height: 32},
			"portal":             {Image: "portal.png", Width: 32, Height: 32},
			"spikes":             {Image: "spikes.png", Width: 32, Height: 32},
			"missile":            {Image: "missile.png", Width: 8, Height: 16},
		},
	}
}
