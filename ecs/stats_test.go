package ecs

import (
	"testing"
	"time"
)

type sleepSystem struct {
	sleepDur time.Duration
	ticks    int
}

func (s *sleepSystem) InitQueries(m *Manager) {}
func (s *sleepSystem) Begin(m *Manager)       {}
func (s *sleepSystem) Tick(m *Manager, dt float64) {
	s.ticks++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

func TestManagerStats(t *testing.T) {
	r := NewComponentRegistry()
	c := RegisterComponent[int](r)
	m := NewManager(r)

	stats := m.Stats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 total executions, got %d", stats.TotalExecutions)
	}

	sys1 := &sleepSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &sleepSystem{sleepDur: 2 * time.Millisecond}
	m.RegisterSystem(sys1)
	m.RegisterSystem(sys2)
	m.DeclareQuery(c)
	m.Start()

	e := m.CreateEntity()
	c.Add(e)
	m.CreateEntity()

	stats = m.Stats()
	if stats.FreshEntities != 2 {
		t.Errorf("expected 2 fresh entities, got %d", stats.FreshEntities)
	}

	m.Tick(0.016)
	m.Tick(0.016)
	m.Tick(0.016)

	stats = m.Stats()

	if stats.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", stats.Ticks)
	}
	if stats.LiveEntities != 2 {
		t.Errorf("expected 2 live entities, got %d", stats.LiveEntities)
	}
	if stats.FreshEntities != 0 {
		t.Errorf("expected 0 fresh entities, got %d", stats.FreshEntities)
	}
	if stats.DeclaredQueries != 1 {
		t.Errorf("expected 1 declared query, got %d", stats.DeclaredQueries)
	}
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 systems * 3 ticks), got %d", stats.TotalExecutions)
	}
	if len(stats.Systems) != 2 {
		t.Fatalf("expected 2 system stats, got %d", len(stats.Systems))
	}

	for _, sysStats := range stats.Systems {
		if sysStats.Name != "sleepSystem" {
			t.Errorf("expected system name 'sleepSystem', got '%s'", sysStats.Name)
		}
		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}
		if sysStats.MinDuration == 0 {
			t.Errorf("expected non-zero min duration")
		}
		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}
		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
		if sysStats.TotalDuration < sysStats.MaxDuration {
			t.Errorf("total duration (%v) should be >= max duration (%v)", sysStats.TotalDuration, sysStats.MaxDuration)
		}
	}

	if sys1.ticks != 3 || sys2.ticks != 3 {
		t.Errorf("expected both systems to tick 3 times, got %d and %d", sys1.ticks, sys2.ticks)
	}
}
