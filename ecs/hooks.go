package ecs

// Script is per-entity behavior. Begin runs once, when the sweep admits the
// entity; Tick runs every frame after the registered systems. The current
// entity and manager are passed explicitly for the duration of the call and
// must not be retained.
type Script interface {
	Begin(e *Entity, m *Manager)
	Tick(e *Entity, m *Manager, dt float64)
}

// System is per-population behavior driven by the manager. InitQueries runs
// during Start while query declaration is still open, Begin runs once after
// the manager transitions to running, and Tick runs every frame in
// registration order.
type System interface {
	InitQueries(m *Manager)
	Begin(m *Manager)
	Tick(m *Manager, dt float64)
}
