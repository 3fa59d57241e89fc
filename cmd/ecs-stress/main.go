// Command ecs-stress churns an entity population for a configured duration
// and prints a markdown report: spawn/kill throughput, per-system timings,
// and how often the adaptive dispatcher chose the parallel path.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/plus3/swarm/ecs"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML scenario config")
	durationFlag := flag.Duration("duration", 0, "total run duration (overrides config)")
	entitiesFlag := flag.Int("entities", 0, "initial entity count (overrides config)")
	churnFlag := flag.Int("churn", -1, "entities killed and respawned per tick (overrides config)")
	cpuProfileFlag := flag.Bool("cpuprofile", false, "write a CPU profile for the run")
	seedFlag := flag.Int64("seed", 1, "seed for the scenario RNG")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("loading scenario config", zap.Error(err))
	}
	if *durationFlag > 0 {
		cfg.Duration.Duration = *durationFlag
	}
	if *entitiesFlag > 0 {
		cfg.Entities = *entitiesFlag
	}
	if *churnFlag >= 0 {
		cfg.ChurnPerTick = *churnFlag
	}
	if *cpuProfileFlag {
		cfg.CPUProfile = true
	}

	if cfg.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	logger.Info("starting ECS stress test",
		zap.Duration("duration", cfg.Duration.Duration),
		zap.Int("entities", cfg.Entities),
		zap.Int("churn_per_tick", cfg.ChurnPerTick),
		zap.Bool("parallel", cfg.Parallel),
	)

	rng := rand.New(rand.NewSource(*seedFlag))

	comps := newComponents()
	mgr := ecs.NewManager(comps.registry)

	movement := &movementSystem{c: comps, parallel: cfg.Parallel}
	heat := &heatSystem{c: comps}
	lifetime := &lifetimeSystem{c: comps}
	churn := &churnSystem{c: comps, rng: rng, perTick: cfg.ChurnPerTick}

	mgr.RegisterSystem(movement)
	mgr.RegisterSystem(heat)
	mgr.RegisterSystem(lifetime)
	mgr.RegisterSystem(churn)
	mgr.Start()

	logger.Info("populating", zap.Int("entities", cfg.Entities))
	for i := 0; i < cfg.Entities; i++ {
		spawnRandom(mgr, comps, rng)
	}

	report := &Report{Config: cfg}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration.Duration)
	defer cancel()

	startTime := time.Now()
	lastFrame := startTime
	lastLog := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			now := time.Now()
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now

			tickStart := time.Now()
			mgr.Tick(dt)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			report.TotalTicks++

			if time.Since(lastLog) >= time.Second {
				lastLog = time.Now()
				stats := mgr.Stats()
				logger.Info("progress",
					zap.Int64("ticks", report.TotalTicks),
					zap.Int("live_entities", stats.LiveEntities),
					zap.Int64("parallel_runs", stats.Dispatch.ParallelRuns),
				)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.TickTime.Finalize()
	report.Expired = lifetime.expired
	report.Killed = churn.killed
	report.Spawned = churn.spawned
	report.Manager = mgr.Stats()

	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("generating report", zap.Error(err))
	}

	logger.Info("done",
		zap.Int64("ticks", report.TotalTicks),
		zap.Duration("avg_tick", report.TickTime.Avg),
	)
}
