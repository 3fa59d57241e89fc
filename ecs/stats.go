package ecs

import "time"

// ManagerStats provides a point-in-time snapshot of a manager's population
// and execution counters.
type ManagerStats struct {
	Ticks           int64
	LiveEntities    int
	FreshEntities   int
	DeclaredQueries int
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
	Dispatch        DispatchStats
}

// SystemStats provides execution statistics for a single registered system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration
	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

// Stats returns statistics about the population and system execution.
func (m *Manager) Stats() *ManagerStats {
	m.mu.Lock()
	freshCount := len(m.fresh)
	m.mu.Unlock()

	stats := &ManagerStats{
		Ticks:           m.ticks,
		LiveEntities:    len(m.entities),
		FreshEntities:   freshCount,
		DeclaredQueries: len(m.queries),
		SystemCount:     len(m.systems),
		Systems:         make([]SystemStats, len(m.systemStats)),
		Dispatch:        m.dispatcher.Stats(),
	}

	var totalExecs int64
	for i, internal := range m.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
