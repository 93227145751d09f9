package game

import (
	"github.com/lixenwraith/last-touch/core"
)

// Registry is the sole source of truth for active contacts. Insertion
// order is preserved so rendering and elimination see a stable list.
//
// All methods run on the game loop goroutine; no locking.
type Registry struct {
	contacts map[int]*Contact
	order    []int // ids in insertion order

	alloc *Allocator
	clock core.Clock
}

// NewRegistry creates an empty registry.
func NewRegistry(alloc *Allocator, clock core.Clock) *Registry {
	return &Registry{
		contacts: make(map[int]*Contact),
		alloc:    alloc,
		clock:    clock,
	}
}

// Upsert creates a contact for an unknown id and reports added=true,
// or updates the position of a known id and reports added=false.
func (r *Registry) Upsert(id, x, y int) (added bool) {
	if c, ok := r.contacts[id]; ok {
		c.X, c.Y = x, y
		return false
	}

	r.contacts[id] = &Contact{
		ID:        id,
		X:         x,
		Y:         y,
		Color:     r.alloc.Pick(r.usedHues()),
		CreatedAt: r.clock.Now(),
	}
	r.order = append(r.order, id)
	return true
}

// UpdatePosition moves a known contact. Unknown ids are ignored; a
// move arriving after its contact's release is a stale event.
func (r *Registry) UpdatePosition(id, x, y int) {
	if c, ok := r.contacts[id]; ok {
		c.X, c.Y = x, y
	}
}

// Remove deletes a contact. removed reports whether the id was present;
// signal reports whether a "removed" notification should fire, which is
// suppressed on the removal that empties the registry.
func (r *Registry) Remove(id int) (removed, signal bool) {
	if _, ok := r.contacts[id]; !ok {
		return false, false
	}

	delete(r.contacts, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, len(r.contacts) > 0
}

// Size returns the number of active contacts.
func (r *Registry) Size() int {
	return len(r.contacts)
}

// Contains reports whether an id is active.
func (r *Registry) Contains(id int) bool {
	_, ok := r.contacts[id]
	return ok
}

// Get returns the contact for an id, or nil.
func (r *Registry) Get(id int) *Contact {
	return r.contacts[id]
}

// Contacts returns copies of all contacts in insertion order.
func (r *Registry) Contacts() []Contact {
	out := make([]Contact, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.contacts[id])
	}
	return out
}

// IDs returns the active ids in insertion order. The elimination tick
// indexes into this for its uniform draw.
func (r *Registry) IDs() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) usedHues() map[int]bool {
	used := make(map[int]bool, len(r.contacts))
	for _, c := range r.contacts {
		used[c.Color.Hue] = true
	}
	return used
}
