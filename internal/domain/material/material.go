// Package material holds the shared color table applied to every sprite.
//
// The table doubles as the player's health: spike hits darken every
// gameplay material, and the game is over once all of them are black.
package material

import "sort"

// ID names a drawable material
type ID string

// Gameplay and UI material identifiers
const (
	Player            ID = "player"
	Ground            ID = "ground"
	TransparentGround ID = "transparent_ground"
	Portal            ID = "portal"
	Spikes            ID = "spikes"
	Missile           ID = "missile"

	Console    ID = "console"
	MenuButton ID = "menu_button"
)

// Color is a linear RGBA tint, each channel nominally in 0..1
type Color struct {
	R, G, B, A float64
}

// White is the untinted color
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Dark reports whether every color channel is at or below zero
func (c Color) Dark() bool {
	return c.R <= 0 && c.G <= 0 && c.B <= 0
}

func (c Color) shift(delta float64) Color {
	return Color{
		R: clamp01(c.R + delta),
		G: clamp01(c.G + delta),
		B: clamp01(c.B + delta),
		A: c.A,
	}
}

// snapEpsilon absorbs the rounding left by repeated decimal steps,
// e.g. ten subtractions of 0.1 from 1.
const snapEpsilon = 1e-9

func clamp01(v float64) float64 {
	if v < snapEpsilon {
		return 0
	}
	if v > 1-snapEpsilon {
		return 1
	}
	return v
}

// Table maps material ids to their current tint.
// Materials in the UI set never take part in brightness changes.
type Table struct {
	colors map[ID]Color
	ui     map[ID]struct{}
}

// NewTable creates a table with the given UI exclusion list
func NewTable(ui ...ID) *Table {
	t := &Table{
		colors: make(map[ID]Color),
		ui:     make(map[ID]struct{}, len(ui)),
	}
	for _, id := range ui {
		t.ui[id] = struct{}{}
	}
	return t
}

// DefaultTable returns every known material at full brightness
func DefaultTable() *Table {
	t := NewTable(Console, MenuButton)
	for _, id := range []ID{Player, Ground, TransparentGround, Portal, Spikes, Missile, Console, MenuButton} {
		t.Set(id, White)
	}
	return t
}

// Set stores the color for id
func (t *Table) Set(id ID, c Color) {
	t.colors[id] = c
}

// Get returns the color for id, or White when unknown
func (t *Table) Get(id ID) Color {
	c, ok := t.colors[id]
	if !ok {
		return White
	}
	return c
}

// IsUI reports whether id is excluded from brightness changes
func (t *Table) IsUI(id ID) bool {
	_, ok := t.ui[id]
	return ok
}

// Tracked returns the sorted ids affected by brightness changes
func (t *Table) Tracked() []ID {
	ids := make([]ID, 0, len(t.colors))
	for id := range t.colors {
		if t.IsUI(id) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Darken lowers every tracked material by delta
func (t *Table) Darken(delta float64) {
	t.Adjust(-delta)
}

// Adjust shifts every tracked material's RGB channels by delta, clamped to 0..1
func (t *Table) Adjust(delta float64) {
	for id, c := range t.colors {
		if t.IsUI(id) {
			continue
		}
		t.colors[id] = c.shift(delta)
	}
}

// AllDark reports whether every tracked material has reached zero.
// A table without tracked materials is never dark.
func (t *Table) AllDark() bool {
	tracked := 0
	for id, c := range t.colors {
		if t.IsUI(id) {
			continue
		}
		tracked++
		if !c.Dark() {
			return false
		}
	}
	return tracked > 0
}
