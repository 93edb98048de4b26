package menu

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalhub/internal/application/state"
)

func createTestMenu() (*Menu, *state.Machine) {
	states := state.NewMachine(state.StateMenu)
	return New(states, log.New(io.Discard)), states
}

func TestMenu_InitialLabels(t *testing.T) {
	m, _ := createTestMenu()

	assert.Equal(t, StartIdle, m.StartLabel())
	assert.Equal(t, ExitIdle, m.ExitLabel())
}

func TestMenu_Hover(t *testing.T) {
	tests := []struct {
		name  string
		hover func(m *Menu, entered bool)
		label func(m *Menu) string
		idle  string
		over  string
	}{
		{"start", (*Menu).HoverStart, (*Menu).StartLabel, StartIdle, StartHover},
		{"exit", (*Menu).HoverExit, (*Menu).ExitLabel, ExitIdle, ExitHover},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := createTestMenu()

			tt.hover(m, true)
			assert.Equal(t, tt.over, tt.label(m))

			tt.hover(m, false)
			assert.Equal(t, tt.idle, tt.label(m))
		})
	}
}

func TestMenu_ClickStart(t *testing.T) {
	m, states := createTestMenu()

	m.HoverStart(true)
	m.ClickStart()

	assert.Equal(t, StartClicked, m.StartLabel())
	next, ok := states.Pending()
	require.True(t, ok)
	assert.Equal(t, state.StateGame, next)

	t.Run("hover no longer changes the label", func(t *testing.T) {
		m.HoverStart(false)
		assert.Equal(t, StartClicked, m.StartLabel())
	})

	t.Run("second click is ignored", func(t *testing.T) {
		m.ClickStart()
		_, _, ok := states.Apply()
		assert.True(t, ok)
		_, ok = states.Pending()
		assert.False(t, ok)
	})
}

func TestMenu_ClickExit(t *testing.T) {
	m, states := createTestMenu()

	m.ClickExit()
	assert.Equal(t, ExitClicked, m.ExitLabel())

	_, err := m.Update(1.0 / 60)
	assert.ErrorIs(t, err, ebiten.Termination)

	_, pending := states.Pending()
	assert.False(t, pending, "exit does not go through the state machine")
}
