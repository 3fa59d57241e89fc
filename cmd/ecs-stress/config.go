package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config describes one stress scenario. Values come from an optional TOML
// file and can be overridden by flags.
type Config struct {
	// Duration is the total wall-clock time the scenario runs for.
	Duration duration `toml:"duration"`
	// Entities is the initial population size.
	Entities int `toml:"entities"`
	// ChurnPerTick is how many entities are killed and respawned each frame.
	ChurnPerTick int `toml:"churn_per_tick"`
	// Parallel routes the movement pass through the adaptive dispatcher.
	Parallel bool `toml:"parallel"`
	// CPUProfile writes a CPU profile for the run.
	CPUProfile bool `toml:"cpu_profile"`
	// GCPauseMetrics enables detailed GC pause metrics in the report.
	GCPauseMetrics bool `toml:"gc_pause_metrics"`
}

// duration wraps time.Duration so TOML values like "30s" parse directly.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func defaultConfig() Config {
	return Config{
		Duration:     duration{10 * time.Second},
		Entities:     10000,
		ChurnPerTick: 100,
		Parallel:     true,
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse scenario config %s: %w", path, err)
	}
	if cfg.Entities <= 0 {
		return cfg, fmt.Errorf("scenario config %s: entities must be positive", path)
	}
	if cfg.ChurnPerTick < 0 {
		return cfg, fmt.Errorf("scenario config %s: churn_per_tick must not be negative", path)
	}
	return cfg, nil
}
