/*
Package ecs provides an in-process runtime for a heterogeneous population of
entities, each an aggregate of typed component records, with per-frame logic
driven over subsets of the population selected by component ownership.

Core concepts:

  - Entity: a unique identity plus a variable set of owned components.
  - Component: a plain data record type declared as part of a fixed roster
    of at most 64 types per runtime instance.
  - Query: "all entities owning at least this set of components", identified
    by a bitmask key and cached when declared up front.
  - Script / System: hook objects the manager calls at defined points of
    every frame.

Basic usage:

	registry := ecs.NewComponentRegistry()
	position := ecs.RegisterComponent[Position](registry)
	velocity := ecs.RegisterComponent[Velocity](registry)

	mgr := ecs.NewManager(registry)
	mgr.DeclareQuery(position, velocity)
	mgr.Start()

	e := mgr.CreateEntity()
	*position.Add(e) = Position{X: 1, Y: 2}
	*velocity.Add(e) = Velocity{DX: 3, DY: 4}

	mgr.Tick(0.016) // admits e, runs systems and scripts

	mgr.ForEach(func(e *ecs.Entity) {
		pos := position.Get(e)
		vel := velocity.Get(e)
		pos.X += vel.DX
		pos.Y += vel.DY
	}, position, velocity)

Declared queries pay an O(n) admission cost once per entity and an O(1) cost
per lookup; undeclared lookups scan the live set every frame. ForEachParallel
routes the batch through an adaptive dispatcher that probes the per-entity
cost and fans out across worker goroutines only when the measured break-even
test says it pays off.
*/
package ecs
