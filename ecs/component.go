package ecs

import "reflect"

// ComponentType identifies one slot of a registry roster. Every Component[T]
// handle satisfies it; queries and forEach calls are expressed in terms of it.
type ComponentType interface {
	Slot() int
}

// Component is a typed handle to one roster slot, returned by
// RegisterComponent. It provides direct accessors so hot paths never touch
// reflection.
type Component[T any] struct {
	slot int
}

// Slot returns the roster slot index this handle is bound to.
func (c Component[T]) Slot() int {
	return c.slot
}

// Add marks the entity as owning this component and returns a pointer to its
// zero-initialized storage cell. Components may only be added before the
// entity is admitted by a sweep; adding after admission, or adding the same
// component twice, panics.
func (c Component[T]) Add(e *Entity) *T {
	if e.committed {
		panic("ecs: component added after entity admission")
	}
	if e.mask.Has(c.slot) {
		panic("ecs: component added twice to the same entity")
	}
	e.mask.Mark(c.slot)
	return e.cells[c.slot].(*T)
}

// Has reports whether the entity owns this component.
func (c Component[T]) Has(e *Entity) bool {
	return e.mask.Has(c.slot)
}

// Get returns a pointer to the entity's storage cell for this component.
// The entity must own the component; violating that is a contract failure
// and panics.
func (c Component[T]) Get(e *Entity) *T {
	if !e.mask.Has(c.slot) {
		panic("ecs: entity does not own the requested component")
	}
	return e.cells[c.slot].(*T)
}

// AddComponent is the handle-free form of Component.Add, resolving the slot
// through the owning manager's registry.
func AddComponent[T any](e *Entity) *T {
	slot := e.mgr.registry.slotFor(reflect.TypeFor[T]())
	return Component[T]{slot: slot}.Add(e)
}

// GetComponent is the handle-free form of Component.Get.
func GetComponent[T any](e *Entity) *T {
	slot := e.mgr.registry.slotFor(reflect.TypeFor[T]())
	return Component[T]{slot: slot}.Get(e)
}

// HasComponent is the handle-free form of Component.Has.
func HasComponent[T any](e *Entity) bool {
	slot := e.mgr.registry.slotFor(reflect.TypeFor[T]())
	return e.mask.Has(slot)
}
