package ecs

import (
	"fmt"
	"reflect"
	"testing"
)

// fabricateType builds a distinct struct type at runtime so the roster cap
// can be exercised without declaring 65 source-level types.
func fabricateType(n int) reflect.Type {
	return reflect.StructOf([]reflect.StructField{
		{Name: fmt.Sprintf("F%d", n), Type: reflect.TypeFor[int]()},
	})
}

func TestRegistrySlotsAreStable(t *testing.T) {
	r := NewComponentRegistry()
	type A struct{ V int }
	type B struct{ V int }

	a := RegisterComponent[A](r)
	b := RegisterComponent[B](r)

	if a.Slot() != 0 || b.Slot() != 1 {
		t.Fatalf("expected slots 0 and 1, got %d and %d", a.Slot(), b.Slot())
	}

	// Registering the same type again must resolve to the same slot.
	again := RegisterComponent[A](r)
	if again.Slot() != a.Slot() {
		t.Errorf("duplicate registration changed slot: %d != %d", again.Slot(), a.Slot())
	}
	if r.Size() != 2 {
		t.Errorf("expected 2 registered types, got %d", r.Size())
	}
}

func TestRegistryRosterCap(t *testing.T) {
	r := NewComponentRegistry()
	for i := 0; i < MaxComponents; i++ {
		typ := fabricateType(i)
		r.register(typ, func() any { return reflect.New(typ).Interface() })
	}
	if r.Size() != MaxComponents {
		t.Fatalf("expected a full roster of %d types, got %d", MaxComponents, r.Size())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic registering type %d", MaxComponents+1)
		}
	}()
	typ := fabricateType(MaxComponents)
	r.register(typ, func() any { return reflect.New(typ).Interface() })
}

func TestRegistrySealedAfterManagerBinds(t *testing.T) {
	r := NewComponentRegistry()
	type A struct{ V int }
	RegisterComponent[A](r)
	NewManager(r)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic registering after NewManager")
		}
	}()
	type B struct{ V int }
	RegisterComponent[B](r)
}

func TestRegistryUnknownTypePanics(t *testing.T) {
	r := NewComponentRegistry()
	type A struct{ V int }
	RegisterComponent[A](r)

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic resolving an unregistered type")
		}
	}()
	type B struct{ V int }
	r.slotFor(reflect.TypeFor[B]())
}

func TestRegistryNewCells(t *testing.T) {
	r := NewComponentRegistry()
	type A struct{ V int }
	type B struct{ S string }
	RegisterComponent[A](r)
	RegisterComponent[B](r)

	cells := r.newCells()
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if _, ok := cells[0].(*A); !ok {
		t.Errorf("cell 0 is %T, want *A", cells[0])
	}
	if _, ok := cells[1].(*B); !ok {
		t.Errorf("cell 1 is %T, want *B", cells[1])
	}
	if cells[0].(*A).V != 0 {
		t.Errorf("cell 0 not zero-initialized")
	}
}
