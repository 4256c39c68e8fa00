package sim

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/evsim/core/logger"
	"github.com/kilianp07/evsim/core/metrics"
)

// SweepStats aggregates a sweep over several cruising speeds.
type SweepStats struct {
	MeanDistanceKm    float64
	MinDistanceKm     float64
	MaxDistanceKm     float64
	BestSpeedKmh      float64
	BestEnergyPerKmWh float64
}

// SweepResult holds the per-speed results in input order plus the aggregate.
type SweepResult struct {
	Runs  []*Result
	Stats SweepStats
}

// RunSweep simulates each candidate speed. Runs share no state and execute
// concurrently, one vehicle per run; results keep the input order.
func RunSweep(base Config, speedsKmh []float64, sink metrics.RunRecorder, log logger.Logger) (*SweepResult, error) {
	if len(speedsKmh) == 0 {
		return nil, fmt.Errorf("no candidate speeds")
	}

	results := make([]*Result, len(speedsKmh))
	errs := make([]error, len(speedsKmh))
	var wg sync.WaitGroup
	for i, speed := range speedsKmh {
		wg.Add(1)
		go func(i int, speed float64) {
			defer wg.Done()
			cfg := base
			cfg.CruiseSpeedKmh = speed
			results[i], errs[i] = Run(cfg, sink, log)
		}(i, speed)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("speed %v: %w", speedsKmh[i], err)
		}
	}

	return &SweepResult{Runs: results, Stats: sweepStats(results)}, nil
}

func sweepStats(runs []*Result) SweepStats {
	dists := make([]float64, len(runs))
	for i, r := range runs {
		dists[i] = r.Summary.DistanceKm
	}

	s := SweepStats{
		MeanDistanceKm: stat.Mean(dists, nil),
		MinDistanceKm:  floats.Min(dists),
		MaxDistanceKm:  floats.Max(dists),
	}

	// Best efficiency among speeds that actually covered distance.
	for _, r := range runs {
		if r.Summary.DistanceKm <= 0 {
			continue
		}
		if s.BestSpeedKmh == 0 || r.Summary.EnergyPerKmWh < s.BestEnergyPerKmWh {
			s.BestSpeedKmh = r.Summary.TargetSpeedKmh
			s.BestEnergyPerKmWh = r.Summary.EnergyPerKmWh
		}
	}
	return s
}
