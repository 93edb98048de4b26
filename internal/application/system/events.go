package system

import (
	"fmt"

	"github.com/younwookim/portalhub/internal/domain/level"
)

// CollisionEvent is emitted by collision detection and consumed by the
// response system
type CollisionEvent interface {
	isCollisionEvent()
	String() string
}

// PortalEvent reports the player standing on a portal
type PortalEvent struct {
	Destination level.Kind
}

func (PortalEvent) isCollisionEvent() {}

func (e PortalEvent) String() string {
	return fmt.Sprintf("Portal(%s)", e.Destination)
}

// SpikesEvent reports the player touching a spike hazard
type SpikesEvent struct{}

func (SpikesEvent) isCollisionEvent() {}

func (SpikesEvent) String() string {
	return "Spikes"
}
