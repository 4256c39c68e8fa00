// Package export writes a run's history series for external tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/evsim/core/sim"
)

// WriteJSON writes the history to w in JSON format.
func WriteJSON(w io.Writer, history sim.History) error {
	enc := json.NewEncoder(w)
	return enc.Encode(history)
}

// WriteCSV writes the history to w as CSV with a header row.
func WriteCSV(w io.Writer, history sim.History) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tick", "charge_wh", "distance_km"}); err != nil {
		return err
	}
	for _, s := range history {
		rec := []string{
			strconv.Itoa(s.Tick),
			strconv.FormatFloat(s.ChargeWh, 'f', -1, 64),
			strconv.FormatFloat(s.DistanceKm, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
