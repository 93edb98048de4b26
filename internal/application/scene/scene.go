// Package scene defines the Scene interface for game screens.
//
// The menu, playing and game over screens each implement Scene and own
// their update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen.
//
// The game loop delegates Update and Draw to the current scene. A scene
// switches screens either by returning the next Scene from Update or by
// requesting an app state change, which the game maps to a new scene.
type Scene interface {
	// Update advances the scene by dt seconds (typically 1/60).
	// Returns the next scene for a direct transition, nil to stay.
	// Returns an error to terminate the game; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
