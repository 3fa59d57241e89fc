package ecs

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/kamstrup/intmap"
)

type managerState int

const (
	stateInit managerState = iota
	stateRunning
)

// Manager owns one entity population: the live set, the not-yet-admitted
// fresh set, the declared query caches, the registered systems, and the
// parallel dispatcher. Its lifecycle is one-way: queries and systems are
// registered while in the initial state, Start transitions to running, and
// from then on entities can be created and Tick advances frames. Calling an
// operation in the wrong state is a contract violation and panics.
//
// Apart from CreateEntity, which may be called from worker goroutines during
// a parallel dispatch, the Manager assumes single-threaded calling
// discipline.
type Manager struct {
	registry *ComponentRegistry
	state    managerState

	// mu guards id assignment and the fresh-list append, the one operation
	// scripts may perform from inside a parallel dispatch.
	mu     sync.Mutex
	nextID uint64
	fresh  []*Entity

	entities []*Entity
	queries  []queryEntry
	adhoc    map[Mask][]*Entity
	refs     *intmap.Map[uint64, *Entity]

	systems     []System
	systemStats []*systemStatsInternal
	ticks       int64

	dispatcher *Dispatcher
}

// NewManager creates a manager over the given component roster. The roster
// is closed by this call; no further component types can be registered.
func NewManager(registry *ComponentRegistry) *Manager {
	registry.seal()
	return &Manager{
		registry:   registry,
		entities:   make([]*Entity, 0, 1024),
		fresh:      make([]*Entity, 0, 1024),
		adhoc:      make(map[Mask][]*Entity),
		refs:       intmap.New[uint64, *Entity](1024),
		dispatcher: NewDispatcher(),
	}
}

// RegisterSystem adds a system to the manager. The manager keeps the
// reference and drives the system's InitQueries, Begin and Tick hooks.
// Systems may only be registered before Start.
func (m *Manager) RegisterSystem(s System) {
	if m.state != stateInit {
		panic("ecs: system registered after Start")
	}
	m.systems = append(m.systems, s)

	systemType := reflect.TypeOf(s)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	m.systemStats = append(m.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Start transitions the manager to running. Every system's InitQueries hook
// runs first, while query declaration is still open; then the state flips
// and every system's Begin hook runs, at which point entity creation is
// legal. Start may be called once.
func (m *Manager) Start() {
	if m.state != stateInit {
		panic("ecs: Start called twice")
	}
	for _, s := range m.systems {
		s.InitQueries(m)
	}
	m.state = stateRunning
	for _, s := range m.systems {
		s.Begin(m)
	}
}

// CreateEntity creates a fresh entity. The handle is usable immediately for
// component and script attachment; the entity joins the live set and the
// query caches on the next sweep. Safe to call from scripts running inside a
// parallel dispatch.
func (m *Manager) CreateEntity() *Entity {
	if m.state != stateRunning {
		panic("ecs: entity created before Start")
	}
	e := &Entity{
		alive: true,
		cells: m.registry.newCells(),
		mgr:   m,
	}
	m.mu.Lock()
	e.id = m.nextID
	m.nextID++
	m.fresh = append(m.fresh, e)
	m.mu.Unlock()
	return e
}

// EntityByID returns the admitted entity with the given id, if it is still
// in the live set. Fresh entities are not indexed until admission.
func (m *Manager) EntityByID(id uint64) (*Entity, bool) {
	return m.refs.Get(id)
}

// Tick advances one frame: the sweep compacts dead entities and admits
// fresh ones, every registered system ticks in registration order, then
// every live entity's scripts run in attachment order. Entities created by
// a hook during its own invocation become fresh for the next sweep and are
// never removed from iteration mid-tick.
func (m *Manager) Tick(dt float64) {
	if m.state != stateRunning {
		panic("ecs: Tick before Start")
	}
	m.ticks++
	m.sweep()

	for i, s := range m.systems {
		start := time.Now()
		s.Tick(m, dt)
		m.systemStats[i].record(time.Since(start))
	}

	// The live list cannot grow mid-tick, but scripts may kill entities, so
	// iterate by index over the count captured at sweep time.
	n := len(m.entities)
	for i := 0; i < n; i++ {
		if e := m.entities[i]; e.hasScripts() {
			e.runTick(m, dt)
		}
	}
}

// Run drives Tick at the given interval until the context is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			m.Tick(dt)
		}
	}
}

// Dispatcher returns the manager's parallel dispatcher.
func (m *Manager) Dispatcher() *Dispatcher {
	return m.dispatcher
}
