package sheep

import "github.com/vovakirdan/sheepjump/internal/core"

// Mover is anything that scrolls left with the field.
type Mover interface {
	// Advance moves the entity one tick at the given field speed.
	Advance(speed float64)
	// OffField reports whether the entity has fully left the left edge.
	OffField() bool
}

// Collidable is a Mover the player can run into.
type Collidable interface {
	Mover
	// BoundingBox returns the inset hitbox used for collision tests.
	BoundingBox() core.Rect
	// Points returns the avoidance reward credited when it leaves the field.
	Points() int
}

// Registry is an ordered collection of entities, appended at the trailing edge.
type Registry[T Mover] struct {
	items []T
}

// Append adds an entity at the trailing edge.
func (r *Registry[T]) Append(item T) {
	r.items = append(r.items, item)
}

// Advance moves every entity and removes those that left the field.
// Removed entities are returned in their original order.
func (r *Registry[T]) Advance(speed float64) []T {
	var gone []T
	kept := r.items[:0]
	for _, item := range r.items {
		item.Advance(speed)
		if item.OffField() {
			gone = append(gone, item)
			continue
		}
		kept = append(kept, item)
	}
	clear(r.items[len(kept):])
	r.items = kept
	return gone
}

// Len returns the number of entities.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Last returns the trailing entity.
func (r *Registry[T]) Last() (T, bool) {
	if len(r.items) == 0 {
		var zero T
		return zero, false
	}
	return r.items[len(r.items)-1], true
}

// Items returns the live entities. Callers must not retain the slice across ticks.
func (r *Registry[T]) Items() []T {
	return r.items
}

// Clear removes every entity.
func (r *Registry[T]) Clear() {
	clear(r.items)
	r.items = r.items[:0]
}
