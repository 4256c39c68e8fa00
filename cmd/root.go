package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evsim/config"
	"github.com/kilianp07/evsim/core/metrics"
	"github.com/kilianp07/evsim/core/sim"
	"github.com/kilianp07/evsim/infra/logger"
	_ "github.com/kilianp07/evsim/infra/metrics"
	"github.com/kilianp07/evsim/infra/plot"
	_ "github.com/kilianp07/evsim/infra/telemetry"
	"github.com/kilianp07/evsim/pkg/export"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "evsim",
	Short: "EV endurance simulator",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("evsim")
	sink, err := metrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}

	simCfg := cfg.Simulation.ToSim()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "\t\t--- Start of Simulation ---")
	fmt.Fprintln(out, sim.NewVehicle(simCfg, log).Summary(simCfg.TotalTicks()).Text())

	res, err := sim.Run(simCfg, sink, log)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\t\t--- End of Simulation ---")
	fmt.Fprintln(out, res.Summary.Text())

	return writeOutputs(cfg.Output, res)
}

func writeOutputs(out config.OutputConfig, res *sim.Result) error {
	if out.ChartDir != "" {
		if err := writeChart(out.ChartDir, res); err != nil {
			return err
		}
	}
	if out.HistoryCSV != "" {
		if err := writeFile(out.HistoryCSV, res, export.WriteCSV); err != nil {
			return err
		}
	}
	if out.HistoryJSON != "" {
		if err := writeFile(out.HistoryJSON, res, export.WriteJSON); err != nil {
			return err
		}
	}
	return nil
}

func writeChart(dir string, res *sim.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("chart dir: %w", err)
	}
	name := fmt.Sprintf("endurance_%.0fkmh.png", res.Config.CruiseSpeedKmh)
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("chart file: %w", err)
	}
	defer f.Close()
	if err := plot.RenderPNG(f, res.History, res.Config.TickFraction, res.Config.CruiseSpeedKmh); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func writeFile(path string, res *sim.Result, write func(w io.Writer, h sim.History) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("history file: %w", err)
	}
	defer f.Close()
	if err := write(f, res.History); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
