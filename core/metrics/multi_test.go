package metrics

import (
	"errors"
	"testing"
)

type recordingSink struct {
	runs  int
	ticks int
	fail  bool
}

func (r *recordingSink) RecordRun(RunResult) error {
	if r.fail {
		return errors.New("sink failed")
	}
	r.runs++
	return nil
}

func (r *recordingSink) RecordTick(TickSnapshot) error {
	r.ticks++
	return nil
}

// runOnlySink has no tick support.
type runOnlySink struct{ runs int }

func (r *runOnlySink) RecordRun(RunResult) error { r.runs++; return nil }

func TestMultiSinkFanout(t *testing.T) {
	a := &recordingSink{}
	b := &runOnlySink{}
	m := NewMultiSink(a, b)

	if err := m.RecordRun(RunResult{RunID: "r1"}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if a.runs != 1 || b.runs != 1 {
		t.Fatalf("expected both sinks recorded, got %d and %d", a.runs, b.runs)
	}

	if err := m.RecordTick(TickSnapshot{Tick: 1}); err != nil {
		t.Fatalf("record tick: %v", err)
	}
	if a.ticks != 1 {
		t.Fatalf("expected tick forwarded, got %d", a.ticks)
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	m := NewMultiSink(&recordingSink{fail: true}, &recordingSink{})
	if err := m.RecordRun(RunResult{}); err == nil {
		t.Fatal("expected error from failing sink")
	}
}

func TestNewSinkDefaultsToNop(t *testing.T) {
	s, err := NewSink(nil)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if _, ok := s.(NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}
}
