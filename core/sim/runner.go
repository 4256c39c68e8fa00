package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/evsim/core/logger"
	"github.com/kilianp07/evsim/core/metrics"
	"github.com/kilianp07/evsim/core/report"
)

// Result is the outcome of one simulation run.
type Result struct {
	RunID   string
	Config  Config
	Summary report.Summary
	History History
}

// Run drives a vehicle through the full horizon and returns the result. The
// computation is deterministic: identical configs produce identical
// histories. Per-tick snapshots are forwarded to the sink when it supports
// them; the completed run is always recorded.
func Run(cfg Config, sink metrics.RunRecorder, log logger.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulation config: %w", err)
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}

	runID := uuid.NewString()
	tickRec, _ := sink.(metrics.TickRecorder)

	veh := NewVehicle(cfg, log)
	clk := NewClock(cfg.TotalTicks())
	log.Infof("run %s: speed %.0f km/h, %d ticks", runID, cfg.CruiseSpeedKmh, clk.Total())

	for !clk.Done() {
		veh.Tick(clk.Current(), clk.Total())
		if tickRec != nil {
			if err := tickRec.RecordTick(metrics.TickSnapshot{
				RunID:      runID,
				Tick:       clk.Current(),
				ChargeWh:   veh.ChargeWh(),
				DistanceKm: veh.DistanceKm(),
				Charging:   veh.Charging(),
			}); err != nil {
				log.Warnf("record tick %d: %v", clk.Current(), err)
			}
		}
		clk.Advance()
	}

	summary := veh.Summary(clk.Total())
	if err := sink.RecordRun(metrics.RunResult{
		RunID:          runID,
		TargetSpeedKmh: cfg.CruiseSpeedKmh,
		DurationHours:  cfg.DurationHours,
		DistanceKm:     summary.DistanceKm,
		ChargingStops:  summary.ChargingStops,
		EnergyPerKmWh:  summary.EnergyPerKmWh,
		FinalChargeWh:  summary.BatteryChargeWh,
		Time:           time.Now(),
	}); err != nil {
		log.Warnf("record run %s: %v", runID, err)
	}

	return &Result{
		RunID:   runID,
		Config:  cfg,
		Summary: summary,
		History: veh.History(),
	}, nil
}
