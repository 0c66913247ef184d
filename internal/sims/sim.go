// Package sims adapts wave steppers to the core.Sim contract shared by the
// terminal viewer, the GUI and the CLI.
package sims

import (
	"fmt"

	"wavefd/internal/core"
	"wavefd/pkg/wave"
)

// Sim drives a wave.Stepper built from a fixed configuration. Reset
// rebuilds the stepper from that configuration.
type Sim struct {
	name    string
	cfg     wave.Config
	opts    []wave.Option
	stepper *wave.Stepper
}

// New validates cfg by building its first stepper.
func New(name string, cfg wave.Config, opts ...wave.Option) (*Sim, error) {
	s := &Sim{name: name, cfg: cfg, opts: opts}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name identifies the simulation.
func (s *Sim) Name() string { return s.name }

// Size returns the grid dimensions in cells.
func (s *Sim) Size() core.Size {
	g := s.stepper.Grid()
	return core.Size{W: g.NX(), H: g.NY()}
}

// Reset discards the current run and starts again from step 0.
func (s *Sim) Reset() error {
	st, err := wave.NewStepper(s.cfg, s.opts...)
	if err != nil {
		return err
	}
	s.stepper = st
	return nil
}

// Step advances one dt. It returns wave.ErrTerminated once the run is over.
func (s *Sim) Step() error {
	_, err := s.stepper.Step()
	return err
}

// Snapshot returns the current field.
func (s *Sim) Snapshot() wave.Snapshot { return s.stepper.Current() }

// Done reports whether every step of the run has been taken.
func (s *Sim) Done() bool { return s.stepper.State() == wave.StateFinished }

// Stats reports energy and peak amplitude for the current field.
func (s *Sim) Stats() wave.Stats { return s.stepper.Stats() }

// Sources returns the emitters resolved to grid cells.
func (s *Sim) Sources() []wave.Source { return s.stepper.Sources() }

// Stepper exposes the underlying stepper.
func (s *Sim) Stepper() *wave.Stepper { return s.stepper }

// Config returns the configuration the sim was built from.
func (s *Sim) Config() wave.Config { return s.cfg }

// Parameters describes the configuration using the keys wave.Config.Apply
// accepts, plus derived values.
func (s *Sim) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	g := s.stepper.Grid()

	gridParams := []core.Parameter{
		core.IntParam("dims", "Dimensions", cfg.Dims),
		core.FloatParam("lx", "Length X", cfg.LengthX),
		core.IntParam("nx", "Cells X", cfg.NX),
	}
	if cfg.Dims == 2 {
		gridParams = append(gridParams,
			core.FloatParam("ly", "Length Y", cfg.LengthY),
			core.IntParam("ny", "Cells Y", cfg.NY),
		)
	}
	gridParams = append(gridParams, core.DerivedParam("dx", "Spacing", g.DX()))

	steps := core.IntParam("steps", "Steps", s.stepper.TotalSteps())
	steps.Derived = true

	groups := []core.ParameterGroup{
		{Name: "Grid", Params: gridParams},
		{
			Name: "Time",
			Params: []core.Parameter{
				core.FloatParam("t", "Duration", cfg.Duration),
				core.FloatParam("dt", "Time step", cfg.DT),
				steps,
			},
		},
		{
			Name: "Medium",
			Params: []core.Parameter{
				core.FloatParam("c", "Wave speed", cfg.Speed),
				core.DerivedParam("courant", "Courant number", g.Courant()),
			},
			Summary: fmt.Sprintf("r = %.4f, bound %.4f", g.Courant(), wave.StrictBound(g)),
		},
		{
			Name:   "Boundary",
			Params: []core.Parameter{core.StringParam("boundary", "Policy", boundaryName(cfg.Boundary))},
		},
	}
	if len(cfg.Emitters) > 0 {
		groups = append(groups, core.ParameterGroup{
			Name:    "Sources",
			Params:  []core.Parameter{core.StringParam("sources", "Emitters", wave.FormatEmitters(cfg.Emitters))},
			Summary: fmt.Sprintf("%d emitter(s)", len(cfg.Emitters)),
		})
	}
	if gauss, ok := cfg.Initial.(wave.Gaussian); ok {
		pulse := []core.Parameter{
			core.FloatParam("pulse_x", "Center X", gauss.CenterX),
		}
		if cfg.Dims == 2 {
			pulse = append(pulse, core.FloatParam("pulse_y", "Center Y", gauss.CenterY))
		}
		pulse = append(pulse,
			core.FloatParam("pulse_k", "Sharpness", gauss.Sharpness),
			core.FloatParam("pulse_amp", "Amplitude", gauss.Amplitude),
		)
		groups = append(groups, core.ParameterGroup{Name: "Pulse", Params: pulse})
	}
	return core.ParameterSnapshot{Groups: groups}
}

func boundaryName(b wave.BoundaryPolicy) string {
	if b == nil {
		return "fixed"
	}
	return b.String()
}
