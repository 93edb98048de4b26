// Package menu provides the start menu scene.
package menu

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/portalhub/internal/application/scene"
	"github.com/younwookim/portalhub/internal/application/state"
)

// Button labels
const (
	StartIdle    = "Ready?"
	StartHover   = "Start!"
	StartClicked = "Loading..."
	ExitIdle     = "Bored?"
	ExitHover    = "Exit!"
	ExitClicked  = "Exiting..."
)

var (
	colorBG     = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	colorButton = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	colorHover  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	colorText   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// menuButton pairs an ebitenui button with the label it should show
type menuButton struct {
	widget  *widget.Button
	idle    string
	hover   string
	clicked string
	label   string
	done    bool
}

func (b *menuButton) setLabel(label string) {
	b.label = label
	if b.widget != nil {
		b.widget.SetText(label)
	}
}

func (b *menuButton) onHover(entered bool) {
	if b.done {
		return
	}
	if entered {
		b.setLabel(b.hover)
	} else {
		b.setLabel(b.idle)
	}
}

func (b *menuButton) onClick() bool {
	if b.done {
		return false
	}
	b.done = true
	b.setLabel(b.clicked)
	return true
}

// Menu is the start screen with a start and an exit button
type Menu struct {
	states  *state.Machine
	logger  *log.Logger
	ui      *ebitenui.UI
	start   *menuButton
	exit    *menuButton
	exiting bool
}

// New creates the menu scene
func New(states *state.Machine, logger *log.Logger) *Menu {
	m := &Menu{
		states: states,
		logger: logger,
		start:  &menuButton{idle: StartIdle, hover: StartHover, clicked: StartClicked, label: StartIdle},
		exit:   &menuButton{idle: ExitIdle, hover: ExitHover, clicked: ExitClicked, label: ExitIdle},
	}
	m.ui = m.buildUI()
	return m
}

func (m *Menu) buildUI() *ebitenui.UI {
	face := ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))
	textColor := &widget.ButtonTextColor{Idle: colorText, Hover: colorText, Pressed: colorText}
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(colorButton),
		Hover:   imageui.NewNineSliceColor(colorHover),
		Pressed: imageui.NewNineSliceColor(colorHover),
	}

	newButton := func(b *menuButton, clicked func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.label, &face, textColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 8, Bottom: 8, Left: 24, Right: 24}),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(180, 40),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
			widget.ButtonOpts.CursorEnteredHandler(func(*widget.ButtonHoverEventArgs) { b.onHover(true) }),
			widget.ButtonOpts.CursorExitedHandler(func(*widget.ButtonHoverEventArgs) { b.onHover(false) }),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { clicked() }),
		)
	}
	m.start.widget = newButton(m.start, m.ClickStart)
	m.exit.widget = newButton(m.exit, m.ClickExit)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(m.start.widget)
	panel.AddChild(m.exit.widget)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// StartLabel returns the start button's current text
func (m *Menu) StartLabel() string { return m.start.label }

// ExitLabel returns the exit button's current text
func (m *Menu) ExitLabel() string { return m.exit.label }

// HoverStart updates the start button for a cursor entering or leaving it
func (m *Menu) HoverStart(entered bool) { m.start.onHover(entered) }

// HoverExit updates the exit button for a cursor entering or leaving it
func (m *Menu) HoverExit(entered bool) { m.exit.onHover(entered) }

// ClickStart requests the Game state
func (m *Menu) ClickStart() {
	if !m.start.onClick() {
		return
	}
	if err := m.states.Set(state.StateGame); err != nil {
		m.logger.Warn("start rejected", "err", err)
		return
	}
	m.logger.Info("starting game")
}

// ClickExit ends the application on the next update
func (m *Menu) ClickExit() {
	if !m.exit.onClick() {
		return
	}
	m.exiting = true
	m.logger.Info("exit requested")
}

// Update runs the UI. After the exit button was clicked it returns
// ebiten.Termination, one frame later so the label is drawn.
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if m.exiting {
		return nil, ebiten.Termination
	}
	m.ui.Update()
	return nil, nil
}

// Draw renders the menu
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	m.ui.Draw(screen)
}

// OnEnter implements scene.Scene
func (m *Menu) OnEnter() {}

// OnExit implements scene.Scene
func (m *Menu) OnExit() {}
