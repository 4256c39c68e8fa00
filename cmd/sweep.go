package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evsim/config"
	"github.com/kilianp07/evsim/core/metrics"
	"github.com/kilianp07/evsim/core/sim"
	"github.com/kilianp07/evsim/infra/logger"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Simulate each candidate cruising speed",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("sweep")
	sink, err := metrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}

	base := cfg.Simulation.ToSim()
	res, err := sim.RunSweep(base, cfg.Sweep.SpeedsKmh, sink, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range res.Runs {
		fmt.Fprintf(out, "\t\t--- Target speed %.0f km/h ---\n", r.Config.CruiseSpeedKmh)
		fmt.Fprintln(out, r.Summary.Text())
		if cfg.Output.ChartDir != "" {
			if err := writeChart(cfg.Output.ChartDir, r); err != nil {
				return err
			}
		}
	}

	st := res.Stats
	fmt.Fprintf(out, "Distance over %d speeds: mean %.1f km, min %.1f km, max %.1f km\n",
		len(res.Runs), st.MeanDistanceKm, st.MinDistanceKm, st.MaxDistanceKm)
	fmt.Fprintf(out, "Best efficiency: %.1f Wh/km at %.0f km/h\n",
		st.BestEnergyPerKmWh, st.BestSpeedKmh)
	return nil
}
