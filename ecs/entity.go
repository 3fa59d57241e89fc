package ecs

// Entity is one member of the population: a unique identity plus a variable
// set of owned components and an ordered list of attached scripts.
//
// An entity starts out "fresh": components and scripts may be attached until
// the next sweep admits it into the live set, after which its shape is
// frozen. Killing an entity only flips its liveness flag; structural removal
// happens on the following sweep.
type Entity struct {
	id        uint64
	alive     bool
	committed bool
	mask      Mask
	cells     []any
	scripts   []Script
	mgr       *Manager
}

// ID returns the entity's unique, never-reused identifier.
func (e *Entity) ID() uint64 {
	return e.id
}

// IsAlive reports whether the entity has not been killed.
func (e *Entity) IsAlive() bool {
	return e.alive
}

// Kill marks the entity as dead. It stays visible to queries and iteration
// until the next sweep compacts it out.
func (e *Entity) Kill() {
	e.alive = false
}

// Mask returns the bitset of roster slots the entity owns.
func (e *Entity) Mask() Mask {
	return e.mask
}

// Manager returns the manager this entity belongs to.
func (e *Entity) Manager() *Manager {
	return e.mgr
}

// AddScript appends a script to the entity. Scripts may only be attached
// before the entity is admitted; attaching later panics.
func (e *Entity) AddScript(s Script) {
	if e.committed {
		panic("ecs: script added after entity admission")
	}
	e.scripts = append(e.scripts, s)
}

func (e *Entity) hasScripts() bool {
	return len(e.scripts) != 0
}

func (e *Entity) runBegin(m *Manager) {
	for _, s := range e.scripts {
		s.Begin(e, m)
	}
}

func (e *Entity) runTick(m *Manager, dt float64) {
	for _, s := range e.scripts {
		s.Tick(e, m, dt)
	}
}
