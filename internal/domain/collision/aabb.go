// Package collision provides the axis-aligned overlap test shared by the
// gameplay collision systems.
package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// DefaultTolerance divides the accepted center distance: boxes only count
// as overlapping once their centers are within sum(half)/2.1 on each axis.
// A tolerance of 1 is an exact overlap test.
const DefaultTolerance = 2.1

// epsilon absorbs float rounding when centers sit exactly on the boundary
const epsilon = 1e-9

// Box is an axis-aligned box described by its center and half extents
type Box struct {
	Center cp.Vector
	Half   cp.Vector
}

// NewBox creates a box from a center and a full size
func NewBox(center, size cp.Vector) Box {
	return Box{Center: center, Half: size.Mult(0.5)}
}

// Overlaps reports whether a and b overlap on both axes:
// |dx| * tolerance <= a.Half.X + b.Half.X, and the same for Y.
// The test is symmetric in a and b.
func Overlaps(a, b Box, tolerance float64) bool {
	dx := math.Abs(a.Center.X - b.Center.X)
	dy := math.Abs(a.Center.Y - b.Center.Y)
	return dx*tolerance <= a.Half.X+b.Half.X+epsilon &&
		dy*tolerance <= a.Half.Y+b.Half.Y+epsilon
}
