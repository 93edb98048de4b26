// Package playing provides the main gameplay scene.
package playing

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portalhub/internal/application/console"
	"github.com/younwookim/portalhub/internal/application/event"
	"github.com/younwookim/portalhub/internal/application/replay"
	"github.com/younwookim/portalhub/internal/application/scene"
	"github.com/younwookim/portalhub/internal/application/state"
	"github.com/younwookim/portalhub/internal/application/system"
	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/ecs"
	"github.com/younwookim/portalhub/internal/infrastructure/assets"
	"github.com/younwookim/portalhub/internal/infrastructure/config"
)

var colorBG = color.RGBA{0, 0, 0, 255}

// Playing is the main gameplay scene
type Playing struct {
	cfg      *config.GameConfig
	states   *state.Machine
	textures assets.Textures
	logger   *log.Logger
	screenW  int
	screenH  int

	world     *ecs.World
	level     level.Level
	materials *material.Table

	// Event queues
	collisions *event.Queue[system.CollisionEvent]
	lines      *event.Queue[string]

	input     func() system.InputState
	spawner   *system.Spawner
	movement  *system.MovementSystem
	camera    *system.CameraSystem
	missiles  *system.MissileSystem
	collision *system.CollisionSystem
	response  *system.ResponseSystem
	console   *console.Console

	// Hot reload
	watcher *config.Watcher
	loader  *config.Loader

	// Input recording
	recorder   *replay.Recorder
	recordPath string

	spawnErr error
}

// New creates a Playing scene on the hub level.
// textures may be nil when nothing is drawn, as in headless replays.
func New(cfg *config.GameConfig, states *state.Machine, textures assets.Textures, logger *log.Logger) *Playing {
	sprites := assets.Sprites(cfg.Sprites)
	screenW, screenH := cfg.Window.Width, cfg.Window.Height

	p := &Playing{
		cfg:        cfg,
		states:     states,
		textures:   textures,
		logger:     logger,
		screenW:    screenW,
		screenH:    screenH,
		world:      ecs.NewWorld(),
		level:      level.NewHub(),
		materials:  material.DefaultTable(),
		collisions: event.NewQueue[system.CollisionEvent](),
		lines:      event.NewQueue[string](),
		input:      system.NewInputSystem(screenW, screenH).GetInput,
		spawner:    system.NewSpawner(sprites, cfg.Camera.InitialScale, logger),
		movement:   system.NewMovementSystem(cfg.Movement.Delta),
		camera:     system.NewCameraSystem(cfg.Camera.ZoomStep),
		missiles:   system.NewMissileSystem(sprites[material.Missile], cfg.Missile.Speed.Vector(), screenW, screenH, logger),
	}
	p.collision = system.NewCollisionSystem(cfg.Collision.Tolerance, p.collisions)
	p.response = system.NewResponseSystem(p.collisions, p.lines, p.materials, states, cfg.Brightness.Delta, logger)
	p.console = console.New(p.lines, logger, cfg.Console.MaxLines)

	return p
}

// SetInput replaces the input source, e.g. with a replay
func (p *Playing) SetInput(input func() system.InputState) {
	p.input = input
}

// WatchConfig reloads tunables from loader whenever watcher reports a change
func (p *Playing) WatchConfig(watcher *config.Watcher, loader *config.Loader) {
	p.watcher = watcher
	p.loader = loader
}

// Record captures every frame's input and writes it to path on exit.
// An empty path picks a timestamped file name.
func (p *Playing) Record(path string) {
	if path == "" {
		path = replay.GenerateFilename()
	}
	p.recordPath = path
	p.recorder = replay.NewRecorder(p.level.Kind.String(), p.screenW, p.screenH, 1/float64(p.cfg.Window.Framerate))
	p.recorder.RecordTunables(replay.TunablesFrom(p.cfg))
	p.logger.Info("recording enabled", "file", path)
}

// World returns the entity world
func (p *Playing) World() *ecs.World { return p.world }

// Materials returns the brightness table
func (p *Playing) Materials() *material.Table { return p.materials }

// Console returns the debug console
func (p *Playing) Console() *console.Console { return p.console }

// OnEnter spawns the level (implements scene.Scene)
func (p *Playing) OnEnter() {
	p.spawnErr = p.spawner.Spawn(p.world, p.level)
	if p.spawnErr != nil {
		p.logger.Error("failed to spawn level", "level", p.level.Kind, "err", p.spawnErr)
	}
}

// OnExit saves any recording and despawns everything (implements scene.Scene)
func (p *Playing) OnExit() {
	p.saveRecording()
	p.world.Clear()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.spawnErr != nil {
		return nil, fmt.Errorf("playing: %w", p.spawnErr)
	}

	p.reload()

	input := p.input()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.Step(input, dt)

	return nil, nil // state changes go through the state machine
}

// Step runs one frame of gameplay for the given input
func (p *Playing) Step(input system.InputState, dt float64) {
	p.collisions.Update()
	p.lines.Update()

	if input.ToggleConsole {
		p.console.Toggle()
	}
	if input.ConsoleHello {
		p.lines.Send("Hello")
	}

	p.camera.Zoom(p.world, input.WheelY)
	p.movement.Update(p.world, p.level, input, dt)
	// aim with this frame's camera
	p.camera.Follow(p.world)
	p.missiles.Fire(p.world, input)
	p.missiles.Advance(p.world)

	p.collision.Update(p.world)

	if input.BrightnessUp {
		p.materials.Adjust(p.cfg.Brightness.DebugStep)
	}
	if input.BrightnessDown {
		p.materials.Adjust(-p.cfg.Brightness.DebugStep)
	}

	p.response.Update(p.world)
	p.console.Update()

	p.world.ClearChanged()
}

func (p *Playing) reload() {
	if p.watcher == nil {
		return
	}
	select {
	case err, ok := <-p.watcher.Errors:
		if ok {
			p.logger.Warn("config watcher error", "err", err)
		}
	default:
	}

	name, ok := p.watcher.Poll()
	if !ok {
		return
	}
	cfg, err := p.loader.Load()
	if err != nil {
		p.logger.Error("config reload failed", "file", name, "err", err)
		return
	}
	p.ApplyConfig(cfg)
	p.logger.Info("config reloaded", "file", name)
}

// ApplyConfig updates the runtime tunables. Window and sprite settings
// only take effect on the next start.
func (p *Playing) ApplyConfig(cfg *config.GameConfig) {
	p.cfg = cfg
	p.movement.SetDelta(cfg.Movement.Delta)
	p.camera.SetZoomStep(cfg.Camera.ZoomStep)
	p.missiles.SetSpeed(cfg.Missile.Speed.Vector())
	p.collision.SetTolerance(cfg.Collision.Tolerance)
	p.response.SetDelta(cfg.Brightness.Delta)

	if p.recorder != nil {
		p.recorder.RecordTunables(replay.TunablesFrom(cfg))
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.recordPath); err != nil {
		p.logger.Error("failed to save recording", "file", p.recordPath, "err", err)
		return
	}
	p.logger.Info("recording saved", "file", p.recordPath, "frames", p.recorder.FrameCount())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	_, cam, ok := p.world.Camera()
	if ok {
		view := system.View(cam, p.screenW, p.screenH)
		for _, id := range p.drawOrder() {
			p.drawSprite(screen, id, view)
		}
	}

	p.console.Draw(screen)
}

// drawOrder returns sprite entities sorted by Z, then by id
func (p *Playing) drawOrder() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(p.world.Sprite))
	for id := range p.world.Sprite {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b ecs.EntityID) int {
		if c := cmp.Compare(p.world.Transform[a].Z, p.world.Transform[b].Z); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ids
}

func (p *Playing) drawSprite(screen *ebiten.Image, id ecs.EntityID, view ebiten.GeoM) {
	sprite := p.world.Sprite[id]
	img, ok := p.textures[sprite.Material]
	if !ok {
		return
	}
	t := p.world.Transform[id]
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	// image rows grow downward, world Y grows upward
	op.GeoM.Scale(sprite.Size.X/iw, -sprite.Size.Y/ih)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)
	op.GeoM.Concat(view)

	c := p.materials.Get(sprite.Material)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	screen.DrawImage(img, op)
}
