package plot

import (
	"bytes"
	"testing"

	"github.com/kilianp07/evsim/core/sim"
)

func TestRenderPNG(t *testing.T) {
	history := sim.History{
		{Tick: 1, ChargeWh: 70000, DistanceKm: 0},
		{Tick: 2, ChargeWh: 61838, DistanceKm: 70},
		{Tick: 3, ChargeWh: 53675, DistanceKm: 140},
	}
	var buf bytes.Buffer
	if err := RenderPNG(&buf, history, 1, 70); err != nil {
		t.Fatalf("render: %v", err)
	}
	magic := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < len(magic) || !bytes.Equal(buf.Bytes()[:len(magic)], magic) {
		t.Fatalf("output is not a PNG, got %d bytes", buf.Len())
	}
}

func TestRenderPNGRejectsShortHistory(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(&buf, sim.History{{Tick: 1}}, 1, 70)
	if err == nil {
		t.Fatal("expected error for short history")
	}
}
