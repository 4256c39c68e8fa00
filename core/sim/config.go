package sim

import "fmt"

// Default battery parameters, matching a 70 kWh pack on a 21 kW charger.
const (
	DefaultBatteryCapacityWh = 70000.0
	DefaultChargePowerW      = 21000.0
)

// Config holds the resolved parameters for one simulation run.
type Config struct {
	// TickFraction is the fraction of an hour represented by one tick,
	// in (0, 1]. 1/60 gives minute resolution.
	TickFraction float64
	// DurationHours is the simulated horizon.
	DurationHours float64
	// CruiseSpeedKmh is the constant target speed while driving.
	CruiseSpeedKmh float64
	// BatteryCapacityWh is the nominal pack capacity.
	BatteryCapacityWh float64
	// ChargePowerW is the constant charging power.
	ChargePowerW float64
}

// Validate reports the first precondition violation. A zero tick fraction
// would divide by zero when deriving the horizon, so it fails here rather
// than at run time.
func (c Config) Validate() error {
	if c.TickFraction <= 0 || c.TickFraction > 1 {
		return fmt.Errorf("tick fraction must be in (0, 1], got %v", c.TickFraction)
	}
	if c.DurationHours <= 0 {
		return fmt.Errorf("duration must be positive, got %v", c.DurationHours)
	}
	if c.CruiseSpeedKmh <= 0 {
		return fmt.Errorf("cruising speed must be positive, got %v", c.CruiseSpeedKmh)
	}
	if c.BatteryCapacityWh <= 0 {
		return fmt.Errorf("battery capacity must be positive, got %v", c.BatteryCapacityWh)
	}
	if c.ChargePowerW <= 0 {
		return fmt.Errorf("charge power must be positive, got %v", c.ChargePowerW)
	}
	return nil
}

// TotalTicks derives the simulation horizon from the duration and the tick
// fraction.
func (c Config) TotalTicks() int {
	return int(c.DurationHours / c.TickFraction)
}
