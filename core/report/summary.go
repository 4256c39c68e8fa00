// Package report holds the structured result of a simulation run and its
// textual rendering. The computation never depends on the presentation.
package report

import (
	"fmt"
	"strings"
)

// Summary captures the final state of one simulation run.
type Summary struct {
	BatteryCapacityWh         float64 `json:"battery_capacity_wh"`
	BatteryChargeWh           float64 `json:"battery_charge_wh"`
	BatteryChargeCumulativeWh float64 `json:"battery_charge_cumulative_wh"`
	ChargeRateW               float64 `json:"charge_rate_w"`
	ChargingStops             int     `json:"charging_stops"`
	EnergyPerHourWh           float64 `json:"energy_per_hour_wh"`
	EnergyPerTickWh           float64 `json:"energy_per_tick_wh"`
	EnergyPerKmWh             float64 `json:"energy_per_km_wh"`
	DistancePerTickKm         float64 `json:"distance_per_tick_km"`
	DistanceKm                float64 `json:"distance_km"`
	TargetSpeedKmh            float64 `json:"target_speed_kmh"`
	AverageSpeedKmh           float64 `json:"average_speed_kmh"`
	TickFraction              float64 `json:"tick_fraction"`
	TicksPerHour              float64 `json:"ticks_per_hour"`
}

// Text renders the summary as a human-readable block.
func (s Summary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Battery capacity (Wh):        %.0f\n", s.BatteryCapacityWh)
	fmt.Fprintf(&b, "Battery charge current (Wh):  %.0f\n", s.BatteryChargeWh)
	fmt.Fprintf(&b, "Battery charge total (Wh):    %.0f\n", s.BatteryChargeCumulativeWh)
	fmt.Fprintf(&b, "Battery charge speed (W):     %.0f\n", s.ChargeRateW)
	fmt.Fprintf(&b, "Number of charging stops:     %d\n", s.ChargingStops)
	fmt.Fprintf(&b, "Energy use per hour (Wh):     %.0f\n", s.EnergyPerHourWh)
	fmt.Fprintf(&b, "Energy use per tick (Wh):     %.1f\n", s.EnergyPerTickWh)
	fmt.Fprintf(&b, "Energy use per km (Wh/km):    %.1f\n", s.EnergyPerKmWh)
	fmt.Fprintf(&b, "Distance per tick (km):       %.4f\n", s.DistancePerTickKm)
	fmt.Fprintf(&b, "Distance driven (km):         %.2f\n", s.DistanceKm)
	fmt.Fprintf(&b, "Target speed (km/h):          %.4f\n", s.TargetSpeedKmh)
	fmt.Fprintf(&b, "Average speed (km/h):         %.2f\n", s.AverageSpeedKmh)
	fmt.Fprintf(&b, "Time factor:                  %.4f\n", s.TickFraction)
	fmt.Fprintf(&b, "Ticks per hour:               %.1f\n", s.TicksPerHour)
	return b.String()
}
