package ecs_test

import "github.com/plus3/swarm/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current int
	Max     int
}

type Name struct {
	Value string
}

type AI struct {
	State int
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string

// roster bundles a registry with handles for every test component type.
type roster struct {
	registry *ecs.ComponentRegistry
	position ecs.Component[Position]
	velocity ecs.Component[Velocity]
	health   ecs.Component[Health]
	name     ecs.Component[Name]
	ai       ecs.Component[AI]
	score    ecs.Component[Score]
	tag      ecs.Component[Tag]
}

func newTestRoster() *roster {
	registry := ecs.NewComponentRegistry()
	return &roster{
		registry: registry,
		position: ecs.RegisterComponent[Position](registry),
		velocity: ecs.RegisterComponent[Velocity](registry),
		health:   ecs.RegisterComponent[Health](registry),
		name:     ecs.RegisterComponent[Name](registry),
		ai:       ecs.RegisterComponent[AI](registry),
		score:    ecs.RegisterComponent[Score](registry),
		tag:      ecs.RegisterComponent[Tag](registry),
	}
}

// hookScript is a Script test double with optional callbacks.
type hookScript struct {
	beginFn func(e *ecs.Entity, m *ecs.Manager)
	tickFn  func(e *ecs.Entity, m *ecs.Manager, dt float64)
}

func (s *hookScript) Begin(e *ecs.Entity, m *ecs.Manager) {
	if s.beginFn != nil {
		s.beginFn(e, m)
	}
}

func (s *hookScript) Tick(e *ecs.Entity, m *ecs.Manager, dt float64) {
	if s.tickFn != nil {
		s.tickFn(e, m, dt)
	}
}

// hookSystem is a System test double with optional callbacks.
type hookSystem struct {
	initFn  func(m *ecs.Manager)
	beginFn func(m *ecs.Manager)
	tickFn  func(m *ecs.Manager, dt float64)
}

func (s *hookSystem) InitQueries(m *ecs.Manager) {
	if s.initFn != nil {
		s.initFn(m)
	}
}

func (s *hookSystem) Begin(m *ecs.Manager) {
	if s.beginFn != nil {
		s.beginFn(m)
	}
}

func (s *hookSystem) Tick(m *ecs.Manager, dt float64) {
	if s.tickFn != nil {
		s.tickFn(m, dt)
	}
}
