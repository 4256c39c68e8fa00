// Package physics computes the steady-state power draw of the vehicle.
package physics

// Parameters of the modelled vehicle (roughly a mid-size EV sedan with
// driver). Rolling coefficient is for asphalt.
const (
	airDensityKgM3     = 1.2041
	dragCoefficient    = 0.23
	frontalAreaM2      = 1.433 * 1.850
	rollingCoefficient = 0.012
	massWithDriverKg   = 1950
	gravityMS2         = 9.81
	standbyPowerW      = 1000.0
)

// PowerAtSpeed returns the power in watts required to hold a constant speed,
// given in m/s: aerodynamic drag plus rolling resistance plus standby load.
func PowerAtSpeed(v float64) float64 {
	dragArea := dragCoefficient * frontalAreaM2
	forceAir := dragArea * v * v / 2 * airDensityKgM3

	forceRolling := rollingCoefficient * massWithDriverKg * gravityMS2

	return (forceAir+forceRolling)*v + standbyPowerW
}

// KmhToMs converts a speed from km/h to m/s.
func KmhToMs(kmh float64) float64 {
	return kmh / 3.6
}
