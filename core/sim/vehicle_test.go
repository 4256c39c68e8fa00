package sim

import (
	"math"
	"testing"

	"github.com/kilianp07/evsim/core/physics"
)

// testLogger discards output but counts warnings.
type testLogger struct{ warns int }

func (l *testLogger) Debugf(string, ...any)         {}
func (l *testLogger) Debugw(string, map[string]any) {}
func (l *testLogger) Infof(string, ...any)          {}
func (l *testLogger) Warnf(string, ...any)          { l.warns++ }
func (l *testLogger) Errorf(string, ...any)         {}

func hourlyConfig(speedKmh, durationHours float64) Config {
	return Config{
		TickFraction:      1,
		DurationHours:     durationHours,
		CruiseSpeedKmh:    speedKmh,
		BatteryCapacityWh: DefaultBatteryCapacityWh,
		ChargePowerW:      DefaultChargePowerW,
	}
}

func runVehicle(t *testing.T, cfg Config) *Vehicle {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	veh := NewVehicle(cfg, &testLogger{})
	total := cfg.TotalTicks()
	for tick := 1; tick <= total; tick++ {
		veh.Tick(tick, total)
	}
	return veh
}

func TestShortTripNeedsNoCharging(t *testing.T) {
	// 5 hourly ticks at 70 km/h stay well inside a full 70 kWh pack.
	cfg := hourlyConfig(70, 5)
	veh := runVehicle(t, cfg)

	if got := veh.DistanceKm(); got != 350 {
		t.Fatalf("expected 350 km got %v", got)
	}
	if got := veh.ChargingStops(); got != 0 {
		t.Fatalf("expected no charging stops got %d", got)
	}

	energyPerTick := physics.PowerAtSpeed(physics.KmhToMs(70))
	if energyPerTick*5 >= DefaultBatteryCapacityWh {
		t.Fatalf("scenario invalid: trip does not fit in one charge")
	}
	wantCharge := DefaultBatteryCapacityWh - 5*energyPerTick
	if got := veh.ChargeWh(); math.Abs(got-wantCharge) > 1e-6 {
		t.Fatalf("expected charge %v got %v", wantCharge, got)
	}
}

func TestLongTripChargesAndLosesDistance(t *testing.T) {
	cfg := hourlyConfig(100, 24)
	veh := runVehicle(t, cfg)

	if veh.ChargingStops() < 1 {
		t.Fatalf("expected at least one charging stop")
	}
	if veh.DistanceKm() >= 2400 {
		t.Fatalf("expected less than 2400 km got %v", veh.DistanceKm())
	}
}

func TestDistanceMonotonic(t *testing.T) {
	veh := runVehicle(t, hourlyConfig(100, 48))
	prev := 0.0
	for _, s := range veh.History() {
		if s.DistanceKm < prev {
			t.Fatalf("distance decreased at tick %d: %v < %v", s.Tick, s.DistanceKm, prev)
		}
		prev = s.DistanceKm
	}
}

func TestHistoryCoversEveryTick(t *testing.T) {
	cfg := Config{
		TickFraction:      1.0 / 60,
		DurationHours:     24,
		CruiseSpeedKmh:    90,
		BatteryCapacityWh: DefaultBatteryCapacityWh,
		ChargePowerW:      DefaultChargePowerW,
	}
	veh := runVehicle(t, cfg)

	total := cfg.TotalTicks()
	if total != 1440 {
		t.Fatalf("expected 1440 ticks got %d", total)
	}
	h := veh.History()
	if len(h) != total {
		t.Fatalf("expected %d samples got %d", total, len(h))
	}
	for i, s := range h {
		if s.Tick != i+1 {
			t.Fatalf("expected tick %d at index %d got %d", i+1, i, s.Tick)
		}
	}
}

func TestChargingSessionsAreContiguous(t *testing.T) {
	cfg := Config{
		TickFraction:      1.0 / 60,
		DurationHours:     24,
		CruiseSpeedKmh:    100,
		BatteryCapacityWh: DefaultBatteryCapacityWh,
		ChargePowerW:      DefaultChargePowerW,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}

	// Replay the run tick by tick, classifying each tick by whether the
	// distance advanced, and count maximal runs of charging ticks.
	veh := NewVehicle(cfg, &testLogger{})
	total := cfg.TotalTicks()
	sessions := 0
	prevDistance := 0.0
	prevCharging := false
	for tick := 1; tick <= total; tick++ {
		veh.Tick(tick, total)
		charging := veh.DistanceKm() == prevDistance
		if charging && !prevCharging {
			sessions++
		}
		prevDistance = veh.DistanceKm()
		prevCharging = charging
	}

	if sessions == 0 {
		t.Fatalf("scenario invalid: expected charging to occur")
	}
	if veh.ChargingStops() != sessions {
		t.Fatalf("stop count %d does not match %d contiguous sessions", veh.ChargingStops(), sessions)
	}
}

func TestCumulativeChargeMonotonic(t *testing.T) {
	cfg := hourlyConfig(100, 48)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	veh := NewVehicle(cfg, &testLogger{})
	total := cfg.TotalTicks()
	prev := veh.cumulativeWh
	prevDistance := 0.0
	for tick := 1; tick <= total; tick++ {
		veh.Tick(tick, total)
		if veh.cumulativeWh < prev {
			t.Fatalf("cumulative charge decreased at tick %d", tick)
		}
		drove := veh.DistanceKm() > prevDistance
		if drove && veh.cumulativeWh != prev {
			t.Fatalf("cumulative charge grew on a driving tick %d", tick)
		}
		if !drove && veh.cumulativeWh <= prev {
			t.Fatalf("cumulative charge did not grow on charging tick %d", tick)
		}
		prev = veh.cumulativeWh
		prevDistance = veh.DistanceKm()
	}
}

func TestChargeMayOvershootCapacityByOneTick(t *testing.T) {
	// Long enough that full recharges happen; the session only stops once the
	// next tick would overshoot, so the peak may exceed nominal capacity but
	// never by a full tick's charge.
	cfg := Config{
		TickFraction:      1.0 / 60,
		DurationHours:     72,
		CruiseSpeedKmh:    130,
		BatteryCapacityWh: DefaultBatteryCapacityWh,
		ChargePowerW:      DefaultChargePowerW,
	}
	veh := runVehicle(t, cfg)

	chargePerTick := DefaultChargePowerW * cfg.TickFraction
	peak := 0.0
	for _, s := range veh.History() {
		if s.ChargeWh > peak {
			peak = s.ChargeWh
		}
	}
	if peak > DefaultBatteryCapacityWh+chargePerTick {
		t.Fatalf("charge overshoot beyond one tick: %v", peak)
	}
}

func TestSummaryOnZeroDistance(t *testing.T) {
	veh := NewVehicle(hourlyConfig(70, 5), &testLogger{})
	s := veh.Summary(5)
	if s.EnergyPerKmWh != 0 {
		t.Fatalf("expected zero energy per km got %v", s.EnergyPerKmWh)
	}
	if s.AverageSpeedKmh != 0 {
		t.Fatalf("expected zero average speed got %v", s.AverageSpeedKmh)
	}
}

func TestSummaryFields(t *testing.T) {
	cfg := hourlyConfig(70, 5)
	veh := runVehicle(t, cfg)
	s := veh.Summary(cfg.TotalTicks())

	if s.BatteryCapacityWh != DefaultBatteryCapacityWh {
		t.Fatalf("capacity: %v", s.BatteryCapacityWh)
	}
	if s.TargetSpeedKmh != 70 {
		t.Fatalf("target speed: %v", s.TargetSpeedKmh)
	}
	if s.AverageSpeedKmh != 70 {
		t.Fatalf("average speed without stops should equal target, got %v", s.AverageSpeedKmh)
	}
	if s.TicksPerHour != 1 {
		t.Fatalf("ticks per hour: %v", s.TicksPerHour)
	}
	energyPerTick := physics.PowerAtSpeed(physics.KmhToMs(70))
	if math.Abs(s.EnergyPerTickWh-energyPerTick) > 1e-9 {
		t.Fatalf("energy per tick: %v", s.EnergyPerTickWh)
	}
	wantPerKm := 5 * energyPerTick / 350
	if math.Abs(s.EnergyPerKmWh-wantPerKm) > 1e-9 {
		t.Fatalf("energy per km: expected %v got %v", wantPerKm, s.EnergyPerKmWh)
	}
}

func TestConfigValidate(t *testing.T) {
	base := hourlyConfig(70, 5)
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick fraction", func(c *Config) { c.TickFraction = 0 }},
		{"tick fraction above one", func(c *Config) { c.TickFraction = 1.5 }},
		{"zero duration", func(c *Config) { c.DurationHours = 0 }},
		{"negative speed", func(c *Config) { c.CruiseSpeedKmh = -10 }},
		{"zero capacity", func(c *Config) { c.BatteryCapacityWh = 0 }},
		{"zero charge power", func(c *Config) { c.ChargePowerW = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestClock(t *testing.T) {
	clk := NewClock(3)
	var seen []int
	for !clk.Done() {
		seen = append(seen, clk.Current())
		clk.Advance()
	}
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Fatalf("unexpected tick sequence %v", seen)
	}
}
