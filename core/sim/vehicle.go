// Package sim implements the discrete-time endurance simulation: a vehicle
// alternating between driving at a constant target speed and charging when
// the battery runs low or the remaining schedule requires topping up.
package sim

import (
	"github.com/kilianp07/evsim/core/logger"
	"github.com/kilianp07/evsim/core/physics"
	"github.com/kilianp07/evsim/core/report"
)

// Vehicle owns the battery and odometer state of one simulated run. It is
// advanced once per tick and records a history sample every tick. Not safe
// for concurrent use; each run owns its own Vehicle.
type Vehicle struct {
	capacityWh   float64
	chargeWh     float64
	cumulativeWh float64

	charging bool
	stops    int

	distanceKm float64

	// Per-tick constants derived once at construction.
	energyPerTickWh   float64
	chargePerTickWh   float64
	distancePerTickKm float64
	tickFraction      float64

	history History

	log          logger.Logger
	warnedCharge bool
}

// NewVehicle creates a vehicle with a full battery. The cumulative charge
// counter starts at the initial charge so that the energy-per-km figure only
// reflects energy actually consumed.
func NewVehicle(cfg Config, log logger.Logger) *Vehicle {
	power := physics.PowerAtSpeed(physics.KmhToMs(cfg.CruiseSpeedKmh))
	return &Vehicle{
		capacityWh:        cfg.BatteryCapacityWh,
		chargeWh:          cfg.BatteryCapacityWh,
		cumulativeWh:      cfg.BatteryCapacityWh,
		energyPerTickWh:   power * cfg.TickFraction,
		chargePerTickWh:   cfg.ChargePowerW * cfg.TickFraction,
		distancePerTickKm: cfg.CruiseSpeedKmh * cfg.TickFraction,
		tickFraction:      cfg.TickFraction,
		log:               log,
	}
}

// Tick advances the vehicle by one tick. The tick is a charging tick when a
// charge session is already open, or when driving one more tick would take
// the battery to zero or below. The depletion check is a look-ahead guard,
// not a clamp: charge is never forced back into range afterwards.
func (v *Vehicle) Tick(tick, totalTicks int) {
	if v.charging || v.chargeWh-v.energyPerTickWh <= 0 {
		v.charge(tick, totalTicks)
	} else {
		v.drive()
	}

	v.history = append(v.history, Sample{
		Tick:       tick,
		ChargeWh:   v.chargeWh,
		DistanceKm: v.distanceKm,
	})
}

func (v *Vehicle) drive() {
	v.chargeWh -= v.energyPerTickWh
	v.distanceKm += v.distancePerTickKm

	// The guard and the subtraction use the same expression, but rounding
	// could still leave a transiently negative charge. Surface it once and
	// leave the value untouched.
	if v.chargeWh < 0 && !v.warnedCharge {
		v.warnedCharge = true
		v.log.Warnf("battery charge transiently negative: %.6f Wh", v.chargeWh)
	}
}

func (v *Vehicle) charge(tick, totalTicks int) {
	if !v.charging {
		v.charging = true
		v.stops++
		v.log.Debugf("charging stop %d at tick %d, charge %.1f Wh", v.stops, tick, v.chargeWh)
	}

	v.chargeWh += v.chargePerTickWh
	v.cumulativeWh += v.chargePerTickWh

	if v.fullyCharged() || v.sufficientlyCharged(tick, totalTicks) {
		v.charging = false
	}
}

// fullyCharged looks one charge tick ahead: the session ends when the next
// tick would overshoot capacity. The current charge may therefore exceed the
// nominal capacity by up to one tick's worth.
func (v *Vehicle) fullyCharged() bool {
	return v.chargeWh+v.chargePerTickWh > v.capacityWh
}

// sufficientlyCharged compares the post-charge level of this tick against
// the energy needed to drive the rest of the schedule. Unlike fullyCharged
// it does not look ahead; the asymmetry is intentional.
func (v *Vehicle) sufficientlyCharged(tick, totalTicks int) bool {
	remaining := float64(totalTicks - tick)
	return v.chargeWh > remaining*v.energyPerTickWh
}

// Charging reports whether a charge session is currently open.
func (v *Vehicle) Charging() bool { return v.charging }

// ChargeWh returns the current battery charge.
func (v *Vehicle) ChargeWh() float64 { return v.chargeWh }

// DistanceKm returns the distance driven so far.
func (v *Vehicle) DistanceKm() float64 { return v.distanceKm }

// ChargingStops returns the number of charge sessions entered so far.
func (v *Vehicle) ChargingStops() int { return v.stops }

// History returns the per-tick record of the run.
func (v *Vehicle) History() History { return v.history }

// Summary computes the structured result of the run so far. Both ratios are
// guarded against a zero denominator: a run that never drives reports zero
// efficiency rather than failing.
func (v *Vehicle) Summary(totalTicks int) report.Summary {
	energyPerKm := 0.0
	if v.distanceKm > 0 {
		energyPerKm = (v.cumulativeWh - v.chargeWh) / v.distanceKm
	}
	averageSpeed := 0.0
	if totalTicks > 0 {
		averageSpeed = v.distanceKm / (float64(totalTicks) * v.tickFraction)
	}

	return report.Summary{
		BatteryCapacityWh:         v.capacityWh,
		BatteryChargeWh:           v.chargeWh,
		BatteryChargeCumulativeWh: v.cumulativeWh,
		ChargeRateW:               v.chargePerTickWh / v.tickFraction,
		ChargingStops:             v.stops,
		EnergyPerHourWh:           v.energyPerTickWh / v.tickFraction,
		EnergyPerTickWh:           v.energyPerTickWh,
		EnergyPerKmWh:             energyPerKm,
		DistancePerTickKm:         v.distancePerTickKm,
		DistanceKm:                v.distanceKm,
		TargetSpeedKmh:            v.distancePerTickKm / v.tickFraction,
		AverageSpeedKmh:           averageSpeed,
		TickFraction:              v.tickFraction,
		TicksPerHour:              1 / v.tickFraction,
	}
}
