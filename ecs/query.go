package ecs

// queryEntry is one declared query: a mask key and the ordered list of live
// entities matching it. Order is arrival order, stable within a frame.
type queryEntry struct {
	key      Mask
	entities []*Entity
}

func maskFor(types []ComponentType) Mask {
	var key Mask
	for _, t := range types {
		key.Mark(t.Slot())
	}
	return key
}

// DeclareQuery reserves a cached entity list for the given component
// combination. Declared queries are kept current by the sweep, so lookups
// are O(1). Declaring the same combination twice is a no-op. Queries may
// only be declared before Start.
func (m *Manager) DeclareQuery(types ...ComponentType) {
	if m.state != stateInit {
		panic("ecs: query declared after Start")
	}
	key := maskFor(types)
	for i := range m.queries {
		if m.queries[i].key == key {
			return
		}
	}
	m.queries = append(m.queries, queryEntry{
		key:      key,
		entities: make([]*Entity, 0, 1024),
	})
}

// EntitiesMatching returns every live entity owning at least the given
// components. For a declared query this is the cached list. Otherwise the
// live set is scanned and the result parked in a frame-scoped buffer:
// undeclared results are valid only until the next Tick and must not be
// retained across frames.
func (m *Manager) EntitiesMatching(types ...ComponentType) []*Entity {
	if m.state != stateRunning {
		panic("ecs: entities queried before Start")
	}
	key := maskFor(types)
	for i := range m.queries {
		if m.queries[i].key == key {
			return m.queries[i].entities
		}
	}
	if cached, ok := m.adhoc[key]; ok {
		return cached
	}
	result := make([]*Entity, 0, len(m.entities))
	for _, e := range m.entities {
		if e.mask.ContainsAll(key) {
			result = append(result, e)
		}
	}
	m.adhoc[key] = result
	return result
}

// ForEach runs fn over every entity matching the given components, on the
// calling goroutine, in cache order.
func (m *Manager) ForEach(fn func(*Entity), types ...ComponentType) {
	for _, e := range m.EntitiesMatching(types...) {
		fn(e)
	}
}

// ForEachParallel runs fn over every entity matching the given components,
// letting the dispatcher decide between single-threaded execution and a
// fan-out over worker goroutines. fn must be safe to call concurrently on
// distinct entities.
func (m *Manager) ForEachParallel(fn func(*Entity), types ...ComponentType) {
	m.dispatcher.Run(m.EntitiesMatching(types...), fn)
}
