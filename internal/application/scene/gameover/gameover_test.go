package gameover

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalhub/internal/application/state"
)

func createTestGameOver(keys Keys) (*GameOver, *state.Machine) {
	states := state.NewMachine(state.StateGameOver)
	g := New(states, 320, 240, log.New(io.Discard))
	g.SetKeys(func() Keys { return keys })
	return g, states
}

func TestGameOver_Update(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		g, states := createTestGameOver(Keys{})

		next, err := g.Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
		_, pending := states.Pending()
		assert.False(t, pending)
	})

	t.Run("continue requests the menu", func(t *testing.T) {
		g, states := createTestGameOver(Keys{Continue: true})

		_, err := g.Update(1.0 / 60)
		require.NoError(t, err)
		next, ok := states.Pending()
		require.True(t, ok)
		assert.Equal(t, state.StateMenu, next)

		// holding the key does not queue twice
		_, err = g.Update(1.0 / 60)
		assert.NoError(t, err)
	})

	t.Run("quit terminates", func(t *testing.T) {
		g, _ := createTestGameOver(Keys{Quit: true, Continue: true})

		_, err := g.Update(1.0 / 60)
		assert.ErrorIs(t, err, ebiten.Termination)
	})
}
