package sim

// Sample is one per-tick observation of the vehicle.
type Sample struct {
	Tick       int     `json:"tick"`
	ChargeWh   float64 `json:"charge_wh"`
	DistanceKm float64 `json:"distance_km"`
}

// History is the ordered per-tick record of a run, one sample per tick in
// tick order.
type History []Sample

// Ticks returns the tick index series.
func (h History) Ticks() []int {
	out := make([]int, len(h))
	for i, s := range h {
		out[i] = s.Tick
	}
	return out
}

// ChargeWh returns the battery charge series.
func (h History) ChargeWh() []float64 {
	out := make([]float64, len(h))
	for i, s := range h {
		out[i] = s.ChargeWh
	}
	return out
}

// DistanceKm returns the distance series.
func (h History) DistanceKm() []float64 {
	out := make([]float64, len(h))
	for i, s := range h {
		out[i] = s.DistanceKm
	}
	return out
}
