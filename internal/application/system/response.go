package system

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalhub/internal/application/event"
	"github.com/younwookim/portalhub/internal/application/state"
	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/ecs"
)

// ResponseSystem reacts to collision events
type ResponseSystem struct {
	events    *event.Queue[CollisionEvent]
	console   *event.Queue[string]
	materials *material.Table
	states    *state.Machine
	delta     float64
	logger    *log.Logger

	gameOverRequested bool

	// OnPortal is called for every portal entry. Level switching is not
	// implemented; nil means portals are only logged.
	OnPortal func(dest level.Kind)
}

// NewResponseSystem creates a response system
func NewResponseSystem(
	events *event.Queue[CollisionEvent],
	console *event.Queue[string],
	materials *material.Table,
	states *state.Machine,
	delta float64,
	logger *log.Logger,
) *ResponseSystem {
	return &ResponseSystem{
		events:    events,
		console:   console,
		materials: materials,
		states:    states,
		delta:     delta,
		logger:    logger,
	}
}

// SetDelta changes the darkening per spike hit
func (s *ResponseSystem) SetDelta(delta float64) {
	s.delta = delta
}

// GameOverRequested reports whether GameOver has been requested
func (s *ResponseSystem) GameOverRequested() bool {
	return s.gameOverRequested
}

// Update drains pending events in order and applies their effects
func (s *ResponseSystem) Update(w *ecs.World) {
	for _, ev := range s.events.Drain() {
		s.console.Send(fmt.Sprintf("Collision: %s", ev))

		switch e := ev.(type) {
		case SpikesEvent:
			s.onSpikes(w)
		case PortalEvent:
			s.logger.Info("portal entered", "destination", e.Destination)
			if s.OnPortal != nil {
				s.OnPortal(e.Destination)
			}
		}
	}
}

func (s *ResponseSystem) onSpikes(w *ecs.World) {
	s.materials.Darken(s.delta)
	s.logger.Debug("spikes hit", "delta", s.delta)

	if w.PlayerID != 0 {
		resetToOrigin(w, w.PlayerID)
	}
	for id := range w.IsCamera {
		resetToOrigin(w, id)
	}

	if s.gameOverRequested || !s.materials.AllDark() {
		return
	}
	if err := s.states.Set(state.StateGameOver); err != nil {
		s.logger.Warn("game over transition rejected", "err", err)
		return
	}
	s.gameOverRequested = true
	s.logger.Info("all materials dark, game over")
}

func resetToOrigin(w *ecs.World, id ecs.EntityID) {
	t, ok := w.Transform[id]
	if !ok {
		return
	}
	t.X, t.Y = 0, 0
	w.SetTransform(id, t)
}
