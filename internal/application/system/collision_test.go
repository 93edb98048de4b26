package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/portalhub/internal/application/event"
	"github.com/younwookim/portalhub/internal/domain/collision"
	"github.com/younwookim/portalhub/internal/domain/level"
	"github.com/younwookim/portalhub/internal/domain/material"
	"github.com/younwookim/portalhub/internal/ecs"
)

func createTestCollision(tolerance float64) (*CollisionSystem, *event.Queue[CollisionEvent]) {
	q := event.NewQueue[CollisionEvent]()
	return NewCollisionSystem(tolerance, q), q
}

func TestCollisionSystem_Spikes(t *testing.T) {
	t.Run("player on spike emits one event", func(t *testing.T) {
		w := createTestHub(t)
		sys, q := createTestCollision(collision.DefaultTolerance)
		movePlayer(w, -32, 32)

		sys.DetectSpikes(w)

		assert.Equal(t, []CollisionEvent{SpikesEvent{}}, q.Drain())
	})

	t.Run("one event per touching spike", func(t *testing.T) {
		w := createTestHub(t)
		sys, q := createTestCollision(1)
		// between the spikes at (-32, 32) and (-32, 64)
		movePlayer(w, -32, 48)

		sys.DetectSpikes(w)

		assert.Len(t, q.Drain(), 2)
	})

	t.Run("still player is not checked", func(t *testing.T) {
		w := createTestHub(t)
		sys, q := createTestCollision(collision.DefaultTolerance)
		p := w.Transform[w.PlayerID]
		p.X, p.Y = -32, 32
		w.Transform[w.PlayerID] = p

		sys.DetectSpikes(w)

		assert.Zero(t, q.Len())
	})

	t.Run("player away from spikes", func(t *testing.T) {
		w := createTestHub(t)
		sys, q := createTestCollision(collision.DefaultTolerance)
		movePlayer(w, 64, 64)

		sys.DetectSpikes(w)

		assert.Zero(t, q.Len())
	})
}

func TestCollisionSystem_Portals(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want []CollisionEvent
	}{
		{"on level1 portal", 192, 0, []CollisionEvent{PortalEvent{Destination: level.Level1}}},
		{"edge of level1 portal", 180, 0, []CollisionEvent{PortalEvent{Destination: level.Level1}}},
		{"on secret portal", -224, -160, []CollisionEvent{PortalEvent{Destination: level.Secret1}}},
		{"near but outside", 170, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createTestHub(t)
			sys, q := createTestCollision(collision.DefaultTolerance)
			movePlayer(w, tt.x, tt.y)

			sys.DetectPortals(w)

			assert.Equal(t, tt.want, q.Drain())
		})
	}
}

func TestCollisionSystem_Missiles(t *testing.T) {
	spawnMissile := func(w *ecs.World, x, y float64) ecs.EntityID {
		return w.CreateMissile(ecs.NewTransform(x, y), testSprites()[material.Missile], ecs.Missile{})
	}

	t.Run("missile on border is removed", func(t *testing.T) {
		w := createTestHub(t)
		sys, _ := createTestCollision(collision.DefaultTolerance)
		id := spawnMissile(w, 256, 0)

		assert.Equal(t, 1, sys.DetectMissiles(w))
		assert.False(t, w.Exists(id))
		assert.Equal(t, 0, w.CountMissiles())
	})

	t.Run("missile on portal is removed", func(t *testing.T) {
		w := createTestHub(t)
		sys, _ := createTestCollision(collision.DefaultTolerance)
		spawnMissile(w, 200, 0)

		assert.Equal(t, 1, sys.DetectMissiles(w))
	})

	t.Run("missile in open floor stays", func(t *testing.T) {
		w := createTestHub(t)
		sys, _ := createTestCollision(collision.DefaultTolerance)
		id := spawnMissile(w, 0, 0)

		assert.Zero(t, sys.DetectMissiles(w))
		assert.True(t, w.Exists(id))
	})

	t.Run("unchanged missile is not checked", func(t *testing.T) {
		w := createTestHub(t)
		sys, _ := createTestCollision(collision.DefaultTolerance)
		id := spawnMissile(w, 256, 0)
		w.ClearChanged()

		assert.Zero(t, sys.DetectMissiles(w))
		assert.True(t, w.Exists(id))
	})

	t.Run("missiles emit no events", func(t *testing.T) {
		w := createTestHub(t)
		sys, q := createTestCollision(collision.DefaultTolerance)
		spawnMissile(w, 256, 0)

		sys.Update(w)

		assert.Zero(t, q.Len())
	})
}

func TestCollisionSystem_DefaultTolerance(t *testing.T) {
	w := createTestHub(t)
	sys, q := createTestCollision(0)
	movePlayer(w, -32, 32)

	sys.Update(w)

	require.Equal(t, 1, q.Len())
}
