package system

import (
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/portalhub/internal/application/event"
	"github.com/younwookim/portalhub/internal/domain/collision"
	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/ecs"
)

// portalHalf is the fixed half extent used for player-portal checks.
// It follows the tile grid rather than either sprite.
var portalHalf = cp.Vector{X: level.TileSize / 2, Y: level.TileSize / 2}

// CollisionSystem runs the per-frame overlap checks
type CollisionSystem struct {
	tolerance float64
	events    *event.Queue[CollisionEvent]
}

// NewCollisionSystem creates a collision system writing to events
func NewCollisionSystem(tolerance float64, events *event.Queue[CollisionEvent]) *CollisionSystem {
	if tolerance <= 0 {
		tolerance = collision.DefaultTolerance
	}
	return &CollisionSystem{tolerance: tolerance, events: events}
}

// SetTolerance changes the overlap tolerance
func (s *CollisionSystem) SetTolerance(tolerance float64) {
	s.tolerance = tolerance
}

// Update runs all three checks
func (s *CollisionSystem) Update(w *ecs.World) {
	s.DetectPortals(w)
	s.DetectSpikes(w)
	s.DetectMissiles(w)
}

// DetectPortals emits a PortalEvent for every portal under the player.
// Skipped when the player did not move this frame.
func (s *CollisionSystem) DetectPortals(w *ecs.World) {
	player, ok := s.movedPlayer(w)
	if !ok {
		return
	}
	pbox := collision.Box{Center: player.Pos(), Half: portalHalf}

	for _, id := range sortedIDs(w.Portal) {
		box := collision.Box{Center: w.Transform[id].Pos(), Half: portalHalf}
		if collision.Overlaps(pbox, box, s.tolerance) {
			s.events.Send(PortalEvent{Destination: w.Portal[id].Destination})
		}
	}
}

// DetectSpikes emits one SpikesEvent per spike touching the player.
// Skipped when the player did not move this frame.
func (s *CollisionSystem) DetectSpikes(w *ecs.World) {
	player, ok := s.movedPlayer(w)
	if !ok {
		return
	}
	pbox := ecs.Bounds(player, w.Sprite[w.PlayerID])

	for _, id := range sortedIDs(w.IsSpikes) {
		box := ecs.Bounds(w.Transform[id], w.Sprite[id])
		if collision.Overlaps(pbox, box, s.tolerance) {
			s.events.Send(SpikesEvent{})
		}
	}
}

// DetectMissiles despawns every missile touching a collidable. The missile
// box uses half its sprite extent and the collidable its full extent.
// Only missiles that moved this frame are checked.
func (s *CollisionSystem) DetectMissiles(w *ecs.World) int {
	collidables := sortedIDs(w.IsCollidable)
	removed := 0

	for _, id := range sortedIDs(w.IsMissile) {
		if !w.Changed(id) {
			continue
		}
		mbox := collision.Box{Center: w.Transform[id].Pos(), Half: w.Sprite[id].Half()}
		for _, cid := range collidables {
			cbox := collision.Box{Center: w.Transform[cid].Pos(), Half: w.Sprite[cid].Size}
			if collision.Overlaps(mbox, cbox, s.tolerance) {
				w.DestroyRecursive(id)
				removed++
				break
			}
		}
	}
	return removed
}

func (s *CollisionSystem) movedPlayer(w *ecs.World) (ecs.Transform, bool) {
	if w.PlayerID == 0 || !w.Changed(w.PlayerID) {
		return ecs.Transform{}, false
	}
	return w.Player()
}

func sortedIDs[V any](m map[ecs.EntityID]V) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
