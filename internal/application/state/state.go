package state

import (
	"errors"
	"fmt"
)

// AppState represents the top-level mode of the application
type AppState int

const (
	StateMenu AppState = iota
	StateGame
	StateGameOver
)

// String returns the string representation of the app state
func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateGame:
		return "Game"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ErrSameState is returned when a transition targets the current or already
// queued state
var ErrSameState = errors.New("state: already in or transitioning to state")

// Machine holds the current app state and at most one queued transition.
// Any system may request a transition; it takes effect on Apply.
type Machine struct {
	current AppState
	next    *AppState
}

// NewMachine creates a machine starting in initial
func NewMachine(initial AppState) *Machine {
	return &Machine{current: initial}
}

// Current returns the active state
func (m *Machine) Current() AppState {
	return m.current
}

// Pending returns the queued state, if any
func (m *Machine) Pending() (AppState, bool) {
	if m.next == nil {
		return 0, false
	}
	return *m.next, true
}

// Set queues a transition to s. Requests for the current state or a state
// already queued fail with ErrSameState; a different request replaces the
// queued one.
func (m *Machine) Set(s AppState) error {
	if s == m.current && m.next == nil {
		return fmt.Errorf("%w: %s", ErrSameState, s)
	}
	if m.next != nil && *m.next == s {
		return fmt.Errorf("%w: %s", ErrSameState, s)
	}
	m.next = &s
	return nil
}

// Apply performs the queued transition.
// ok is false when nothing was queued.
func (m *Machine) Apply() (from, to AppState, ok bool) {
	if m.next == nil {
		return m.current, m.current, false
	}
	from = m.current
	m.current = *m.next
	m.next = nil
	return from, m.current, true
}
