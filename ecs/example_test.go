package ecs_test

import (
	"fmt"

	"github.com/plus3/swarm/ecs"
)

// ExampleManager demonstrates the full lifecycle: declare a query, start the
// manager, spawn entities, and advance frames.
func ExampleManager() {
	registry := ecs.NewComponentRegistry()
	position := ecs.RegisterComponent[Position](registry)
	velocity := ecs.RegisterComponent[Velocity](registry)

	mgr := ecs.NewManager(registry)
	mgr.DeclareQuery(position, velocity)
	mgr.Start()

	mover := mgr.CreateEntity()
	*position.Add(mover) = Position{X: 0, Y: 0}
	*velocity.Add(mover) = Velocity{DX: 1, DY: 2}

	static := mgr.CreateEntity()
	*position.Add(static) = Position{X: 100, Y: 100}

	mgr.Tick(1.0) // admits both entities

	mgr.ForEach(func(e *ecs.Entity) {
		pos := position.Get(e)
		vel := velocity.Get(e)
		pos.X += vel.DX
		pos.Y += vel.DY
	}, position, velocity)

	fmt.Printf("movers: %d\n", len(mgr.EntitiesMatching(position, velocity)))
	fmt.Printf("with position: %d\n", len(mgr.EntitiesMatching(position)))
	fmt.Printf("mover at (%.0f, %.0f)\n", position.Get(mover).X, position.Get(mover).Y)

	mover.Kill()
	mgr.Tick(1.0)
	fmt.Printf("movers after kill: %d\n", len(mgr.EntitiesMatching(position, velocity)))

	// Output:
	// movers: 1
	// with position: 2
	// mover at (1, 2)
	// movers after kill: 0
}
