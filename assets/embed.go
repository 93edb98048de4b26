// Package assets embeds the sprite images shipped with the game.
package assets

import "embed"

// FS holds every PNG in this directory
//
//go:embed *.png
var FS embed.FS
