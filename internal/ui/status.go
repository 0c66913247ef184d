package ui

import (
	"fmt"
	"strings"

	"wavefd/internal/core"
	"wavefd/pkg/wave"
)

type statsProvider interface {
	Stats() wave.Stats
}

type stepperProvider interface {
	Stepper() *wave.Stepper
}

// Status is the one-line summary shown under every view.
type Status struct {
	Name     string
	Step     int
	Total    int
	Time     float64
	Energy   float64
	MaxAbs   float64
	HasStats bool
	Paused   bool
	Done     bool
}

// StatusOf samples sim. Energy and peak are filled when the sim reports
// them.
func StatusOf(sim core.Sim) Status {
	snap := sim.Snapshot()
	st := Status{Name: sim.Name(), Step: snap.Step, Time: snap.Time, Done: sim.Done()}
	if p, ok := sim.(stepperProvider); ok {
		st.Total = p.Stepper().TotalSteps()
	}
	if p, ok := sim.(statsProvider); ok {
		stats := p.Stats()
		st.Energy, st.MaxAbs, st.HasStats = stats.Energy, stats.MaxAbs, true
	}
	return st
}

// String renders the status line.
func (s Status) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.Total > 0 {
		fmt.Fprintf(&b, "  step %d/%d", s.Step, s.Total)
	} else {
		fmt.Fprintf(&b, "  step %d", s.Step)
	}
	fmt.Fprintf(&b, "  t=%.3f", s.Time)
	if s.HasStats {
		fmt.Fprintf(&b, "  E=%.4g  max=%.3g", s.Energy, s.MaxAbs)
	}
	switch {
	case s.Done:
		b.WriteString("  [done]")
	case s.Paused:
		b.WriteString("  [paused]")
	}
	return b.String()
}

// ParameterLines flattens a snapshot into indented text lines, one group
// header per group followed by its parameters.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		header := g.Name
		if g.Summary != "" {
			header += " (" + g.Summary + ")"
		}
		lines = append(lines, header)
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
	return lines
}
