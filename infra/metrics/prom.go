package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/evsim/core/metrics"
)

// PromSink records simulation runs as Prometheus metrics.
type PromSink struct {
	runs     *prometheus.CounterVec
	stops    *prometheus.CounterVec
	distance *prometheus.GaugeVec
	energy   *prometheus.GaugeVec
}

// NewPromSink registers the simulation metrics on the default registerer.
func NewPromSink() (coremetrics.RunRecorder, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.RunRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Total number of completed simulation runs",
	}, []string{"target_speed_kmh"})
	stops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_charging_stops_total",
		Help: "Total number of charging stops across runs",
	}, []string{"target_speed_kmh"})
	distance := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "simulation_distance_km",
		Help: "Distance driven in the most recent run per target speed",
	}, []string{"target_speed_kmh"})
	energy := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "simulation_energy_per_km_wh",
		Help: "Energy per km of the most recent run per target speed",
	}, []string{"target_speed_kmh"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(stops); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			stops = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(distance); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			distance = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(energy); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			energy = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, stops: stops, distance: distance, energy: energy}, nil
}

// RecordRun updates the counters and gauges for the run's target speed.
func (s *PromSink) RecordRun(ev coremetrics.RunResult) error {
	speed := fmt.Sprintf("%g", ev.TargetSpeedKmh)
	s.runs.WithLabelValues(speed).Inc()
	s.stops.WithLabelValues(speed).Add(float64(ev.ChargingStops))
	s.distance.WithLabelValues(speed).Set(ev.DistanceKm)
	s.energy.WithLabelValues(speed).Set(ev.EnergyPerKmWh)
	return nil
}
