// Package config loads and validates the simulator configuration from YAML
// or JSON files, with environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/evsim/core/factory"
	"github.com/kilianp07/evsim/core/sim"
)

type Config struct {
	Simulation SimulationConfig `json:"simulation"`
	Sweep      SweepConfig      `json:"sweep"`
	Metrics    MetricsConfig    `json:"metrics"`
	Output     OutputConfig     `json:"output"`
}

// SimulationConfig mirrors sim.Config with serializable fields.
type SimulationConfig struct {
	TickFraction      float64 `json:"tick_fraction"`
	DurationHours     float64 `json:"duration_hours"`
	CruiseSpeedKmh    float64 `json:"cruise_speed_kmh"`
	BatteryCapacityWh float64 `json:"battery_capacity_wh"`
	ChargePowerW      float64 `json:"charge_power_w"`
}

// SetDefaults applies the reference vehicle parameters.
func (c *SimulationConfig) SetDefaults() {
	if c.TickFraction == 0 {
		c.TickFraction = 1.0 / 60
	}
	if c.DurationHours == 0 {
		c.DurationHours = 24
	}
	if c.CruiseSpeedKmh == 0 {
		c.CruiseSpeedKmh = 70
	}
	if c.BatteryCapacityWh == 0 {
		c.BatteryCapacityWh = sim.DefaultBatteryCapacityWh
	}
	if c.ChargePowerW == 0 {
		c.ChargePowerW = sim.DefaultChargePowerW
	}
}

// ToSim converts to the runtime config.
func (c SimulationConfig) ToSim() sim.Config {
	return sim.Config{
		TickFraction:      c.TickFraction,
		DurationHours:     c.DurationHours,
		CruiseSpeedKmh:    c.CruiseSpeedKmh,
		BatteryCapacityWh: c.BatteryCapacityWh,
		ChargePowerW:      c.ChargePowerW,
	}
}

// SweepConfig lists the candidate cruising speeds for the sweep command.
type SweepConfig struct {
	SpeedsKmh []float64 `json:"speeds_kmh"`
}

// SetDefaults applies the reference candidate list.
func (c *SweepConfig) SetDefaults() {
	if len(c.SpeedsKmh) == 0 {
		c.SpeedsKmh = []float64{70, 80, 85, 88, 90, 95, 100}
	}
}

// Validate rejects non-positive candidate speeds.
func (c SweepConfig) Validate() error {
	for _, s := range c.SpeedsKmh {
		if s <= 0 {
			return fmt.Errorf("sweep speed must be positive, got %v", s)
		}
	}
	return nil
}

// MetricsConfig lists the sinks to record runs into.
type MetricsConfig struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}

// OutputConfig selects optional file outputs per run.
type OutputConfig struct {
	// ChartDir receives one PNG per run when set.
	ChartDir string `json:"chart_dir"`
	// HistoryCSV and HistoryJSON receive the history series of single runs.
	HistoryCSV  string `json:"history_csv"`
	HistoryJSON string `json:"history_json"`
}

// Load reads the configuration file, applies K_ environment overrides,
// fills defaults and validates. Precondition violations (zero tick fraction,
// non-positive speed or duration) are reported here, before any simulation
// state exists.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Simulation.SetDefaults()
	cfg.Sweep.SetDefaults()
	if err := cfg.Simulation.ToSim().Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Sweep.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
