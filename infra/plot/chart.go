// Package plot renders a run's history as a dual-axis time series chart:
// distance on the left axis, charge level on the right, time in hours on the
// x-axis. It is a pure function of the history; no shared figure state.
package plot

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/kilianp07/evsim/core/sim"
)

// RenderPNG writes the chart for one run to w. Tick indices are converted to
// elapsed hours and charge values are scaled to kWh for display.
func RenderPNG(w io.Writer, history sim.History, tickFraction, targetSpeedKmh float64) error {
	if len(history) < 2 {
		return fmt.Errorf("history too short to plot: %d samples", len(history))
	}

	hours := make([]float64, len(history))
	distance := make([]float64, len(history))
	chargeKWh := make([]float64, len(history))
	for i, s := range history {
		hours[i] = float64(s.Tick) * tickFraction
		distance[i] = s.DistanceKm
		chargeKWh[i] = s.ChargeWh / 1000
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("EV Endurance - Target Speed: %.0f km/h", targetSpeedKmh),
		XAxis: chart.XAxis{
			Name: "Time (hours)",
		},
		YAxis: chart.YAxis{
			Name: "Distance (km)",
		},
		YAxisSecondary: chart.YAxis{
			Name: "Charge Level (kWh)",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Distance",
				XValues: hours,
				YValues: distance,
			},
			chart.ContinuousSeries{
				Name:    "Charge Level",
				YAxis:   chart.YAxisSecondary,
				XValues: hours,
				YValues: chargeKWh,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
