package collision

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func box(x, y, hw, hh float64) Box {
	return Box{Center: cp.Vector{X: x, Y: y}, Half: cp.Vector{X: hw, Y: hh}}
}

func TestNewBox(t *testing.T) {
	b := NewBox(cp.Vector{X: 10, Y: -4}, cp.Vector{X: 32, Y: 16})

	assert.Equal(t, cp.Vector{X: 10, Y: -4}, b.Center)
	assert.Equal(t, cp.Vector{X: 16, Y: 8}, b.Half)
}

func TestOverlaps_Symmetric(t *testing.T) {
	boxes := []Box{
		box(0, 0, 16, 16),
		box(10, 5, 4, 4),
		box(-32, 64, 16, 16),
		box(100, 100, 1, 1),
		box(15.2, 0, 16, 16),
		box(-7, -30, 12, 2),
	}

	for i, a := range boxes {
		for j, b := range boxes {
			assert.Equal(t, Overlaps(a, b, DefaultTolerance), Overlaps(b, a, DefaultTolerance),
				"pair (%d,%d) should be symmetric", i, j)
		}
	}
}

func TestOverlaps_Tolerance(t *testing.T) {
	a := box(0, 0, 16, 16)
	b := box(0, 0, 12, 12)
	sum := a.Half.X + b.Half.X

	t.Run("separated by sum/2.1 overlaps", func(t *testing.T) {
		b.Center = cp.Vector{X: sum / 2.1}
		assert.True(t, Overlaps(a, b, DefaultTolerance))

		b.Center = cp.Vector{Y: sum / 2.1}
		assert.True(t, Overlaps(a, b, DefaultTolerance))
	})

	t.Run("separated by sum/1.9 does not overlap", func(t *testing.T) {
		b.Center = cp.Vector{X: sum / 1.9}
		assert.False(t, Overlaps(a, b, DefaultTolerance))

		b.Center = cp.Vector{Y: -sum / 1.9}
		assert.False(t, Overlaps(a, b, DefaultTolerance))
	})

	t.Run("both axes must overlap", func(t *testing.T) {
		b.Center = cp.Vector{X: 1, Y: sum}
		assert.False(t, Overlaps(a, b, DefaultTolerance))
	})

	t.Run("exact test with tolerance 2", func(t *testing.T) {
		b.Center = cp.Vector{X: sum / 2}
		assert.True(t, Overlaps(a, b, 2.0))

		b.Center = cp.Vector{X: sum/2 + 0.5}
		assert.False(t, Overlaps(a, b, 2.0))
	})
}
