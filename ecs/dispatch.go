package ecs

import (
	"runtime"
	"sync"
	"time"
)

// Dispatcher decides, per batch, whether to run a per-entity function on the
// calling goroutine or to split it across worker goroutines, based on a
// one-shot cost probe and a closed-form break-even test against the measured
// goroutine-spawn overhead.
//
// A Dispatcher is not reentrant: Run must not be called concurrently with
// itself on the same instance. The single-threaded path is always correct,
// so the parallel path is taken only when the probe says it clearly wins.
type Dispatcher struct {
	workers       int
	spawnOverhead time.Duration

	calls        int64
	parallelRuns int64
}

// DispatchStats reports how often a dispatcher has run and how often it
// chose the parallel path.
type DispatchStats struct {
	Calls        int64
	ParallelRuns int64
}

// NewDispatcher creates a dispatcher sized to the machine. On machines with
// more than three hardware threads one is left for the runtime itself. The
// goroutine-spawn overhead is measured once, here, by timing a no-op worker
// launch.
func NewDispatcher() *Dispatcher {
	workers := runtime.NumCPU()
	if workers > 3 {
		workers--
	}
	return &Dispatcher{
		workers:       workers,
		spawnOverhead: measureSpawnOverhead(),
	}
}

func measureSpawnOverhead() time.Duration {
	started := make(chan time.Time, 1)
	start := time.Now()
	go func() {
		started <- time.Now()
	}()
	return (<-started).Sub(start)
}

// Workers returns the worker-pool size the dispatcher was built with.
func (d *Dispatcher) Workers() int {
	return d.workers
}

// Stats returns the dispatcher's execution counters.
func (d *Dispatcher) Stats() DispatchStats {
	return DispatchStats{Calls: d.calls, ParallelRuns: d.parallelRuns}
}

// Run executes fn once per entity. Batches of at most workers*4 entities
// always run on the calling goroutine. Larger batches are probed: fn is
// timed on the first entity (a single sample; per-entity cost is assumed
// roughly uniform within one batch) and the extrapolated serial cost is
// compared against the extrapolated fan-out cost plus the measured spawn
// overhead. When fan-out wins, workers-1 goroutines each take a contiguous
// equal slice, the remainder runs on the caller, and all workers are joined
// before Run returns.
//
// fn must be safe to invoke concurrently on disjoint entities; the slices
// never overlap and Run performs no synchronization beyond the final join.
func (d *Dispatcher) Run(entities []*Entity, fn func(*Entity)) {
	d.calls++
	n := len(entities)
	if n == 0 {
		return
	}

	i := 0
	if n > d.workers*4 {
		probeStart := time.Now()
		fn(entities[0])
		sample := time.Since(probeStart)
		i = 1

		step := (n - 1) / d.workers
		serialCost := time.Duration(n-1) * sample
		parallelCost := time.Duration(step)*sample + d.spawnOverhead

		if parallelCost < serialCost {
			d.parallelRuns++
			var wg sync.WaitGroup
			for w := 0; w < d.workers-1; w++ {
				wg.Add(1)
				go func(chunk []*Entity) {
					defer wg.Done()
					for _, e := range chunk {
						fn(e)
					}
				}(entities[i : i+step])
				i += step
			}
			for _, e := range entities[i:] {
				fn(e)
			}
			wg.Wait()
			return
		}
	}

	for _, e := range entities[i:] {
		fn(e)
	}
}
