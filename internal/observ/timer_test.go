package observ

import (
	"strings"
	"testing"
)

func TestTimerReportsPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("read")
	tm.End(idx, 100)
	idx = tm.Begin("upgrade")
	tm.End(idx, 0)

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(rep.Phases))
	}
	if rep.Phases[0].Name != "read" || rep.Phases[0].Ops != 100 {
		t.Fatalf("unexpected first phase: %+v", rep.Phases[0])
	}
	if rep.Phases[0].NsPerOp < 0 {
		t.Fatalf("negative ns/op: %f", rep.Phases[0].NsPerOp)
	}
	if rep.Phases[1].NsPerOp != 0 {
		t.Fatalf("phase without ops must report 0 ns/op, got %f", rep.Phases[1].NsPerOp)
	}
}

func TestTimerEndIgnoresBadIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(-1, 1)
	tm.End(5, 1)
	if len(tm.Report().Phases) != 0 {
		t.Fatal("out-of-range End must be a no-op")
	}
}

func TestSummaryListsAllPhases(t *testing.T) {
	tm := NewTimer()
	tm.End(tm.Begin("borrowed-read"), 10)
	tm.End(tm.Begin("owned-read"), 10)
	s := tm.Summary()
	if !strings.Contains(s, "borrowed-read") || !strings.Contains(s, "owned-read") {
		t.Fatalf("summary missing phases: %q", s)
	}
}
