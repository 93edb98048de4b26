// Package gameover provides the screen shown once every material is dark.
package gameover

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/portalhub/internal/application/scene"
	"github.com/younwookim/portalhub/internal/application/state"
)

const message = "GAME OVER\n\nEnter/Space: back to menu\nEsc: quit"

var colorOverlay = color.RGBA{20, 0, 0, 255}

// Keys holds the keys the game over screen reacts to
type Keys struct {
	Continue bool
	Quit     bool
}

// GameOver waits for the player to return to the menu or quit
type GameOver struct {
	states  *state.Machine
	logger  *log.Logger
	screenW int
	screenH int
	keys    func() Keys
}

// New creates the game over scene
func New(states *state.Machine, screenW, screenH int, logger *log.Logger) *GameOver {
	return &GameOver{
		states:  states,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		keys:    readKeys,
	}
}

func readKeys() Keys {
	return Keys{
		Continue: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// SetKeys replaces the key source
func (g *GameOver) SetKeys(keys func() Keys) {
	g.keys = keys
}

// Update implements scene.Scene
func (g *GameOver) Update(_ float64) (scene.Scene, error) {
	keys := g.keys()
	switch {
	case keys.Quit:
		return nil, ebiten.Termination
	case keys.Continue:
		if err := g.states.Set(state.StateMenu); err != nil {
			g.logger.Warn("menu transition rejected", "err", err)
		}
	}
	return nil, nil
}

// Draw implements scene.Scene
func (g *GameOver) Draw(screen *ebiten.Image) {
	screen.Fill(colorOverlay)
	ebitenutil.DebugPrintAt(screen, message, g.screenW/2-60, g.screenH/2-30)
}

// OnEnter implements scene.Scene
func (g *GameOver) OnEnter() {
	g.logger.Info("game over")
}

// OnExit implements scene.Scene
func (g *GameOver) OnExit() {}
