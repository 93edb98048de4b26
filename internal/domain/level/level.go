// Package level describes the static layout data of a playable level.
package level

import "github.com/jakecoffman/cp"

// TileSize is the edge length of a level tile in world units.
const TileSize = 32.0

// Kind identifies which level is loaded
type Kind int

const (
	Hub Kind = iota
	Secret1
	Level1
)

// String returns the string representation of the level kind
func (k Kind) String() string {
	switch k {
	case Hub:
		return "Hub"
	case Secret1:
		return "Secret1"
	case Level1:
		return "Level1"
	default:
		return "Unknown"
	}
}

// Level is the immutable description of the current level.
// Size is in world units and the level is centered on the origin.
type Level struct {
	Size cp.Vector
	Kind Kind
}

// NewHub returns the 15x10 tile hub level
func NewHub() Level {
	return Level{
		Size: cp.Vector{X: 15 * TileSize, Y: 10 * TileSize},
		Kind: Hub,
	}
}

// Columns returns the number of whole tiles along X
func (l Level) Columns() int {
	return int(l.Size.X / TileSize)
}

// Rows returns the number of whole tiles along Y
func (l Level) Rows() int {
	return int(l.Size.Y / TileSize)
}

// Bounds returns the area the player origin may occupy, given the player's
// half extents. Margins are asymmetric because the tile grid has its origin
// at tile centers.
func (l Level) Bounds(playerHalf cp.Vector) cp.BB {
	return cp.BB{
		L: -l.Size.X/2 + TileSize/2,
		R: l.Size.X/2 - TileSize/2 - playerHalf.X,
		B: -l.Size.Y/2 + playerHalf.Y,
		T: l.Size.Y/2 - TileSize,
	}
}
