package ecs

import "reflect"

// MaxComponents is the hard cap on distinct component types per registry.
const MaxComponents = 64

// ComponentRegistry assigns each component type a stable slot index within
// one runtime instance. Each Manager owns exactly one registry; the roster
// is closed once the registry is handed to NewManager.
type ComponentRegistry struct {
	slots     map[reflect.Type]int
	factories []func() any
	sealed    bool
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		slots: make(map[reflect.Type]int),
	}
}

// RegisterComponent adds T to the roster and returns its typed handle.
// Registering the same type again returns a handle for the existing slot.
// Registering more than MaxComponents distinct types, or registering after
// the registry has been bound to a Manager, panics.
func RegisterComponent[T any](r *ComponentRegistry) Component[T] {
	slot := r.register(reflect.TypeFor[T](), func() any { return new(T) })
	return Component[T]{slot: slot}
}

func (r *ComponentRegistry) register(t reflect.Type, factory func() any) int {
	if r.sealed {
		panic("ecs: component registered after the roster was closed")
	}
	if slot, ok := r.slots[t]; ok {
		return slot
	}
	if len(r.factories) >= MaxComponents {
		panic("ecs: component roster exceeds the 64-type limit")
	}
	slot := len(r.factories)
	r.slots[t] = slot
	r.factories = append(r.factories, factory)
	return slot
}

// slotFor returns the slot for a registered type. An unregistered type is a
// programming error and panics rather than returning a sentinel that could
// alias a real slot.
func (r *ComponentRegistry) slotFor(t reflect.Type) int {
	slot, ok := r.slots[t]
	if !ok {
		panic("ecs: component type " + t.String() + " is not part of the roster")
	}
	return slot
}

// newCells allocates one storage cell per roster slot. Every entity carries
// the full block regardless of which components it owns; ownership is
// tracked by the entity mask alone.
func (r *ComponentRegistry) newCells() []any {
	cells := make([]any, len(r.factories))
	for i, factory := range r.factories {
		cells[i] = factory()
	}
	return cells
}

// Size returns the number of registered component types.
func (r *ComponentRegistry) Size() int {
	return len(r.factories)
}

func (r *ComponentRegistry) seal() {
	r.sealed = true
}
