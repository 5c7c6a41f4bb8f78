package game

import (
	"iter"

	"github.com/cbodonnell/blaster/pkg/log"
	"github.com/kamstrup/intmap"
	"github.com/solarlune/resolv"
)

// Manager is the exclusive owner of every live game object.
// Objects are kept in spawn order and addressed by ObjectID.
type Manager struct {
	objects []*GameObject
	index   *intmap.Map[ObjectID, *GameObject]
	space   *resolv.Space
	nextID  ObjectID
}

// NewManager creates a manager whose object shapes are registered in space.
// A nil space disables spatial registration.
func NewManager(space *resolv.Space) *Manager {
	return &Manager{
		objects: make([]*GameObject, 0, 64),
		index:   intmap.New[ObjectID, *GameObject](64),
		space:   space,
	}
}

// Add takes ownership of obj and returns its handle.
// Adding an object this manager already owns returns the existing handle.
func (m *Manager) Add(obj *GameObject) ObjectID {
	if obj == nil {
		log.Warn("Ignoring nil game object")
		return 0
	}
	if obj.released {
		log.Warn("Ignoring released game object %d", obj.id)
		return 0
	}
	switch obj.owner {
	case m:
		return obj.id
	case nil:
	default:
		log.Warn("Ignoring %s %d owned by another manager", obj.kind, obj.id)
		return 0
	}

	m.nextID++
	obj.id = m.nextID
	obj.owner = m
	m.objects = append(m.objects, obj)
	m.index.Put(obj.id, obj)
	if m.space != nil {
		m.space.Add(obj.shape)
	}
	log.Trace("Added %s %d", obj.kind, obj.id)
	return obj.id
}

// Get returns the live object for id.
func (m *Manager) Get(id ObjectID) (*GameObject, bool) {
	return m.index.Get(id)
}

// Len returns the number of objects currently owned.
func (m *Manager) Len() int {
	return len(m.objects)
}

// Space returns the collision space shapes are registered in.
func (m *Manager) Space() *resolv.Space {
	return m.space
}

// SetSpace moves every owned shape from the current collision space to space.
func (m *Manager) SetSpace(space *resolv.Space) {
	for _, obj := range m.objects {
		if m.space != nil {
			m.space.Remove(obj.shape)
		}
		obj.shape.Space = nil
		if space != nil {
			space.Add(obj.shape)
		}
	}
	m.space = space
}

// All yields the objects in spawn order. Objects added while iterating are
// not visited by the same iteration.
func (m *Manager) All() iter.Seq[*GameObject] {
	objects := m.objects
	return func(yield func(*GameObject) bool) {
		for _, obj := range objects {
			if !yield(obj) {
				return
			}
		}
	}
}

// ForEach calls fn for every object in spawn order.
func (m *Manager) ForEach(fn func(obj *GameObject)) {
	for obj := range m.All() {
		fn(obj)
	}
}

// RemoveDestroyed removes and releases every destroyed object in a single
// compaction pass, preserving the relative order of the survivors.
// It returns the number of objects removed.
func (m *Manager) RemoveDestroyed() int {
	// objects[:kept] holds the survivors seen so far; every index in
	// [kept, i) held a destroyed object that has already been released.
	kept := 0
	for i, obj := range m.objects {
		if obj.destroyed {
			m.release(obj)
			continue
		}
		if kept != i {
			m.objects[kept] = obj
		}
		kept++
	}
	removed := len(m.objects) - kept
	clear(m.objects[kept:])
	m.objects = m.objects[:kept]
	if removed > 0 {
		log.Trace("Removed %d destroyed objects", removed)
	}
	return removed
}

// Clear releases every object.
func (m *Manager) Clear() {
	for _, obj := range m.objects {
		m.release(obj)
	}
	clear(m.objects)
	m.objects = m.objects[:0]
}

func (m *Manager) release(obj *GameObject) {
	m.index.Del(obj.id)
	if m.space != nil {
		m.space.Remove(obj.shape)
	}
	obj.release()
}
