package ecs

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Transform map[EntityID]Transform
	Sprite    map[EntityID]Sprite
	Missile   map[EntityID]Missile
	Portal    map[EntityID]Portal

	// Tags
	IsPlayer     map[EntityID]struct{}
	IsCamera     map[EntityID]struct{}
	IsGround     map[EntityID]struct{}
	IsSpikes     map[EntityID]struct{}
	IsMissile    map[EntityID]struct{}
	IsCollidable map[EntityID]struct{}

	// Hierarchy
	Parent   map[EntityID]EntityID
	Children map[EntityID][]EntityID

	// Entities whose transform changed since the last ClearChanged
	changed map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:       1, // 0 is "nil"
		Transform:    make(map[EntityID]Transform),
		Sprite:       make(map[EntityID]Sprite),
		Missile:      make(map[EntityID]Missile),
		Portal:       make(map[EntityID]Portal),
		IsPlayer:     make(map[EntityID]struct{}),
		IsCamera:     make(map[EntityID]struct{}),
		IsGround:     make(map[EntityID]struct{}),
		IsSpikes:     make(map[EntityID]struct{}),
		IsMissile:    make(map[EntityID]struct{}),
		IsCollidable: make(map[EntityID]struct{}),
		Parent:       make(map[EntityID]EntityID),
		Children:     make(map[EntityID][]EntityID),
		changed:      make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Exists checks if an entity has a Transform component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Transform[id]
	return ok
}

// SetTransform stores t and marks the entity changed
func (w *World) SetTransform(id EntityID, t Transform) {
	w.Transform[id] = t
	w.changed[id] = struct{}{}
}

// Changed reports whether id's transform was written since the last ClearChanged
func (w *World) Changed(id EntityID) bool {
	_, ok := w.changed[id]
	return ok
}

// ClearChanged forgets all change marks. Call once at the end of a frame.
func (w *World) ClearChanged() {
	clear(w.changed)
}

// AddChild links child under parent
func (w *World) AddChild(parent, child EntityID) {
	w.Parent[child] = parent
	w.Children[parent] = append(w.Children[parent], child)
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Transform, id)
	delete(w.Sprite, id)
	delete(w.Missile, id)
	delete(w.Portal, id)
	delete(w.IsPlayer, id)
	delete(w.IsCamera, id)
	delete(w.IsGround, id)
	delete(w.IsSpikes, id)
	delete(w.IsMissile, id)
	delete(w.IsCollidable, id)
	delete(w.changed, id)

	if parent, ok := w.Parent[id]; ok {
		siblings := w.Children[parent]
		for i, c := range siblings {
			if c == id {
				w.Children[parent] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
		delete(w.Parent, id)
	}

	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// DestroyRecursive removes an entity and all of its descendants
func (w *World) DestroyRecursive(id EntityID) {
	for _, child := range w.Children[id] {
		delete(w.Parent, child)
		w.DestroyRecursive(child)
	}
	delete(w.Children, id)
	w.DestroyEntity(id)
}

// Clear destroys every entity while keeping ID allocation monotonic
func (w *World) Clear() {
	next := w.nextID
	*w = *NewWorld()
	w.nextID = next
}

// CreatePlayer creates the player entity
func (w *World) CreatePlayer(t Transform, sprite Sprite) EntityID {
	id := w.NewEntity()

	w.SetTransform(id, t)
	w.Sprite[id] = sprite
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreateCamera creates a camera entity
func (w *World) CreateCamera(t Transform) EntityID {
	id := w.NewEntity()

	w.SetTransform(id, t)
	w.IsCamera[id] = struct{}{}

	return id
}

// CreateTile creates a static tile. Collidable tiles block missiles.
func (w *World) CreateTile(t Transform, sprite Sprite, collidable bool) EntityID {
	id := w.NewEntity()

	w.SetTransform(id, t)
	w.Sprite[id] = sprite
	w.IsGround[id] = struct{}{}
	if collidable {
		w.IsCollidable[id] = struct{}{}
	}

	return id
}

// CreateSpikes creates a spike hazard
func (w *World) CreateSpikes(t Transform, sprite Sprite) EntityID {
	id := w.NewEntity()

	w.SetTransform(id, t)
	w.Sprite[id] = sprite
	w.IsSpikes[id] = struct{}{}

	return id
}

// CreatePortal creates a collidable portal leading to dest
func (w *World) CreatePortal(t Transform, sprite Sprite, dest Portal) EntityID {
	id := w.NewEntity()

	w.SetTransform(id, t)
	w.Sprite[id] = sprite
	w.Portal[id] = dest
	w.IsCollidable[id] = struct{}{}

	return id
}

// CreateMissile creates a projectile entity
func (w *World) CreateMissile(t Transform, sprite Sprite, m Missile) EntityID {
	id := w.NewEntity()

	w.SetTransform(id, t)
	w.Sprite[id] = sprite
	w.Missile[id] = m
	w.IsMissile[id] = struct{}{}

	return id
}

// Player returns the player's transform and whether a player exists
func (w *World) Player() (Transform, bool) {
	if w.PlayerID == 0 {
		return Transform{}, false
	}
	t, ok := w.Transform[w.PlayerID]
	return t, ok
}

// Camera returns the first camera found, if any
func (w *World) Camera() (EntityID, Transform, bool) {
	for id := range w.IsCamera {
		return id, w.Transform[id], true
	}
	return 0, Transform{}, false
}

// CountMissiles returns the number of live missiles
func (w *World) CountMissiles() int {
	return len(w.IsMissile)
}
