// Package metrics defines the recording interfaces used to observe
// simulation runs, plus sink composition helpers. Concrete sinks live under
// infra/metrics and infra/telemetry.
package metrics

import "time"

// RunResult is the per-run event recorded after a simulation completes.
type RunResult struct {
	RunID          string
	TargetSpeedKmh float64
	DurationHours  float64
	DistanceKm     float64
	ChargingStops  int
	EnergyPerKmWh  float64
	FinalChargeWh  float64
	Time           time.Time
}

// RunRecorder records completed simulation runs.
type RunRecorder interface {
	RecordRun(ev RunResult) error
}

// TickSnapshot is a per-tick observation of the vehicle.
type TickSnapshot struct {
	RunID      string
	Tick       int
	ChargeWh   float64
	DistanceKm float64
	Charging   bool
}

// TickRecorder records per-tick snapshots. Sinks implement it only when
// per-tick granularity makes sense for their backend.
type TickRecorder interface {
	RecordTick(ev TickSnapshot) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordRun(RunResult) error     { return nil }
func (NopSink) RecordTick(TickSnapshot) error { return nil }

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []RunRecorder
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...RunRecorder) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the run to all sinks, returning the first error.
func (m *MultiSink) RecordRun(ev RunResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordTick forwards the snapshot to sinks that support tick granularity.
func (m *MultiSink) RecordTick(ev TickSnapshot) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(TickRecorder); ok {
			if err := rec.RecordTick(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
