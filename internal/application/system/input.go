package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard and mouse
type InputSystem struct {
	screenW int
	screenH int
}

// NewInputSystem creates a new input system for a logical screen size
func NewInputSystem(screenW, screenH int) *InputSystem {
	return &InputSystem{screenW: screenW, screenH: screenH}
}

// InputState holds the current input state
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// Fire is edge triggered: left click or Space just pressed
	Fire bool

	// Cursor in screen pixels. CursorOK is false when the cursor is
	// outside the window or the window is unfocused.
	CursorX  float64
	CursorY  float64
	CursorOK bool

	WheelY float64

	// Debug keys
	ToggleConsole  bool
	ConsoleHello   bool
	BrightnessUp   bool
	BrightnessDown bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	inside := mx >= 0 && my >= 0 && mx < s.screenW && my < s.screenH

	return InputState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
		Fire: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace),
		CursorX:        float64(mx),
		CursorY:        float64(my),
		CursorOK:       inside && ebiten.IsFocused(),
		WheelY:         wheelY,
		ToggleConsole:  inpututil.IsKeyJustPressed(ebiten.KeyGraveAccent),
		ConsoleHello:   inpututil.IsKeyJustPressed(ebiten.KeyBackslash),
		BrightnessUp:   inpututil.IsKeyJustPressed(ebiten.KeyPeriod),
		BrightnessDown: inpututil.IsKeyJustPressed(ebiten.KeyComma),
	}
}
