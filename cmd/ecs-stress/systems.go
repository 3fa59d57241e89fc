package main

import (
	"math/rand"

	"github.com/plus3/swarm/ecs"
)

// Scenario component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Lifetime struct {
	Remaining float64
}

type Heat struct {
	Value float64
}

// components bundles the scenario roster handles.
type components struct {
	registry *ecs.ComponentRegistry
	position ecs.Component[Position]
	velocity ecs.Component[Velocity]
	lifetime ecs.Component[Lifetime]
	heat     ecs.Component[Heat]
}

func newComponents() *components {
	registry := ecs.NewComponentRegistry()
	return &components{
		registry: registry,
		position: ecs.RegisterComponent[Position](registry),
		velocity: ecs.RegisterComponent[Velocity](registry),
		lifetime: ecs.RegisterComponent[Lifetime](registry),
		heat:     ecs.RegisterComponent[Heat](registry),
	}
}

// spawnRandom creates one entity with a random shape: always a position,
// usually a velocity, sometimes a lifetime and a heat load.
func spawnRandom(m *ecs.Manager, c *components, rng *rand.Rand) {
	e := m.CreateEntity()
	pos := c.position.Add(e)
	pos.X = rng.Float64() * 1000
	pos.Y = rng.Float64() * 1000

	if rng.Intn(10) < 8 {
		vel := c.velocity.Add(e)
		vel.DX = rng.Float64()*2 - 1
		vel.DY = rng.Float64()*2 - 1
	}
	if rng.Intn(10) < 3 {
		c.lifetime.Add(e).Remaining = rng.Float64() * 5
	}
	if rng.Intn(10) < 5 {
		c.heat.Add(e).Value = rng.Float64()
	}
}

// movementSystem integrates positions, optionally through the parallel
// dispatcher to exercise the break-even heuristic.
type movementSystem struct {
	c        *components
	parallel bool
}

func (s *movementSystem) InitQueries(m *ecs.Manager) {
	m.DeclareQuery(s.c.position, s.c.velocity)
}

func (s *movementSystem) Begin(m *ecs.Manager) {}

func (s *movementSystem) Tick(m *ecs.Manager, dt float64) {
	step := func(e *ecs.Entity) {
		pos := s.c.position.Get(e)
		vel := s.c.velocity.Get(e)
		pos.X += vel.DX * dt
		pos.Y += vel.DY * dt
	}
	if s.parallel {
		m.ForEachParallel(step, s.c.position, s.c.velocity)
	} else {
		m.ForEach(step, s.c.position, s.c.velocity)
	}
}

// heatSystem is deliberately CPU-heavy per entity so the dispatcher has
// something worth splitting.
type heatSystem struct {
	c *components
}

func (s *heatSystem) InitQueries(m *ecs.Manager) {
	m.DeclareQuery(s.c.heat)
}

func (s *heatSystem) Begin(m *ecs.Manager) {}

func (s *heatSystem) Tick(m *ecs.Manager, dt float64) {
	m.ForEachParallel(func(e *ecs.Entity) {
		h := s.c.heat.Get(e)
		v := h.Value
		for i := 0; i < 200; i++ {
			v = v*0.999 + 0.001
		}
		h.Value = v
	}, s.c.heat)
}

// lifetimeSystem expires entities, feeding the sweep's dead compaction.
type lifetimeSystem struct {
	c       *components
	expired int64
}

func (s *lifetimeSystem) InitQueries(m *ecs.Manager) {
	m.DeclareQuery(s.c.lifetime)
}

func (s *lifetimeSystem) Begin(m *ecs.Manager) {}

func (s *lifetimeSystem) Tick(m *ecs.Manager, dt float64) {
	m.ForEach(func(e *ecs.Entity) {
		lt := s.c.lifetime.Get(e)
		lt.Remaining -= dt
		if lt.Remaining <= 0 {
			e.Kill()
			s.expired++
		}
	}, s.c.lifetime)
}

// churnSystem kills a batch of live entities and spawns replacements every
// frame, keeping admission and compaction busy.
type churnSystem struct {
	c       *components
	rng     *rand.Rand
	perTick int
	killed  int64
	spawned int64
}

func (s *churnSystem) InitQueries(m *ecs.Manager) {}

func (s *churnSystem) Begin(m *ecs.Manager) {}

func (s *churnSystem) Tick(m *ecs.Manager, dt float64) {
	victims := m.EntitiesMatching(s.c.position)
	for i := 0; i < s.perTick && i < len(victims); i++ {
		victim := victims[s.rng.Intn(len(victims))]
		if victim.IsAlive() {
			victim.Kill()
			s.killed++
		}
	}
	for i := 0; i < s.perTick; i++ {
		spawnRandom(m, s.c, s.rng)
		s.spawned++
	}
}
