// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portalhub/internal/application/scene"
	"github.com/younwookim/portalhub/internal/application/state"
)

// Routes builds the scene for each app state
type Routes map[state.AppState]func() scene.Scene

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	states *state.Machine
	routes Routes
	logger *log.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		logger:  log.Default(),
	}
	g.current.OnEnter()
	return g
}

// NewRouted creates a Game whose scenes follow the state machine.
// The initial scene is the one registered for the current state.
func NewRouted(states *state.Machine, routes Routes, screenW, screenH int, logger *log.Logger) (*Game, error) {
	build, ok := routes[states.Current()]
	if !ok {
		return nil, fmt.Errorf("game: no scene for state %s", states.Current())
	}
	g := New(build(), screenW, screenH)
	g.states = states
	g.routes = routes
	g.logger = logger
	return g, nil
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Scene-driven transition
	if next != nil {
		g.switchTo(next)
		return nil
	}

	// State-driven transition
	if g.states == nil {
		return nil
	}
	from, to, ok := g.states.Apply()
	if !ok {
		return nil
	}
	build, found := g.routes[to]
	if !found {
		return fmt.Errorf("game: no scene for state %s", to)
	}
	g.logger.Info("state changed", "from", from, "to", to)
	g.switchTo(build())

	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
