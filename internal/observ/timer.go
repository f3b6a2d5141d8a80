// Package observ provides lightweight phase timing for the bench tool.
package observ

import (
	"fmt"
	"strings"
	"time"

	"fortio.org/safecast"
)

// Phase records the duration and operation count of one benchmark phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Ops   uint64
}

// Timer tracks the execution time of multiple benchmark phases.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index, recording how many operations it ran.
func (t *Timer) End(idx int, ops uint64) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Ops = ops
}

// PhaseReport is one finished phase in display units.
type PhaseReport struct {
	Name       string
	DurationMS float64
	Ops        uint64
	NsPerOp    float64
}

// Report aggregates all tracked phases.
type Report struct {
	Phases  []PhaseReport
	TotalMS float64
}

// Report converts the tracked phases into display units.
func (t *Timer) Report() Report {
	rep := Report{Phases: make([]PhaseReport, 0, len(t.phases))}
	for _, p := range t.phases {
		pr := PhaseReport{
			Name:       p.Name,
			DurationMS: float64(p.Dur.Nanoseconds()) / 1e6,
			Ops:        p.Ops,
		}
		if p.Ops > 0 {
			ops, err := safecast.Conv[int64](p.Ops)
			if err == nil {
				pr.NsPerOp = float64(p.Dur.Nanoseconds()) / float64(ops)
			}
		}
		rep.TotalMS += pr.DurationMS
		rep.Phases = append(rep.Phases, pr)
	}
	return rep
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range t.Report().Phases {
		fmt.Fprintf(&sb, "  %-24s %9.2f ms", p.Name, p.DurationMS)
		if p.Ops > 0 {
			fmt.Fprintf(&sb, "  %10.1f ns/op", p.NsPerOp)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
