package wave

import (
	"context"
	"io"
	"iter"
	"log"
)

// State is the lifecycle stage of a Stepper.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateStepping
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateStepping:
		return "stepping"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Sink consumes snapshots on the far side of the renderer boundary. It must
// not retain or mutate the snapshot's data past the call.
type Sink interface {
	Consume(Snapshot) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Snapshot) error

// Consume calls f.
func (f SinkFunc) Consume(s Snapshot) error { return f(s) }

// Option customises a Stepper.
type Option func(*Stepper)

// WithLogger routes construction warnings to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Stepper) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkers overrides Config.Workers.
func WithWorkers(n int) Option {
	return func(s *Stepper) { s.workers = n }
}

// Stepper advances a field one dt per Step. It exclusively owns its
// buffers and is not safe for concurrent use.
type Stepper struct {
	grid     Grid
	sources  []Source
	boundary BoundaryPolicy
	field    *FieldState

	r2      float64
	total   int
	step    int
	state   State
	workers int
	logger  *log.Logger
}

// NewStepper validates cfg, checks the Courant number and allocates the
// field. On error no stepper is returned.
func NewStepper(cfg Config, opts ...Option) (*Stepper, error) {
	g, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	total, err := TotalSteps(cfg.Duration, cfg.DT)
	if err != nil {
		return nil, err
	}
	sources := cfg.Sources(g)
	if err := validateSources(g, sources); err != nil {
		return nil, err
	}
	if err := validateBoundary(cfg.Boundary); err != nil {
		return nil, err
	}
	initial := cfg.Initial
	if initial == nil {
		initial = Zero{}
	}
	u0 := make([]float64, g.Len())
	if err := initial.Fill(g, u0); err != nil {
		return nil, err
	}
	if err := CheckStability(g); err != nil {
		return nil, err
	}

	s := &Stepper{
		grid:     g,
		sources:  sources,
		boundary: cfg.Boundary,
		r2:       g.Courant() * g.Courant(),
		total:    total,
		workers:  cfg.Workers,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if r := g.Courant(); r > StrictBound(g) {
		s.logger.Printf("courant number %.4f exceeds the %dD bound %.4f; the field may diverge", r, g.Dims(), StrictBound(g))
	}
	s.field = NewFieldState(g.Len())
	s.field.Load(u0)
	s.state = StateReady
	return s, nil
}

// Step advances the field by exactly one dt and returns the new current
// field. Once TotalSteps have run it returns ErrTerminated.
func (s *Stepper) Step() (Snapshot, error) {
	switch s.state {
	case StateUninitialized:
		return Snapshot{}, configErr("stepper", nil, "not built with NewStepper")
	case StateFinished:
		return Snapshot{}, ErrTerminated
	}
	s.state = StateStepping

	t := float64(s.step) * s.grid.DT()
	prev, cur, next := s.field.Prev(), s.field.Cur(), s.field.Next()

	Inject(cur, s.grid, s.sources, t)
	if s.grid.Dims() == 1 {
		Update1D(next, cur, prev, s.r2)
	} else {
		Update2DParallel(next, cur, prev, s.grid.NX(), s.grid.NY(), s.r2, s.workers)
	}
	s.boundary.Apply(next, cur, s.grid)
	s.field.Rotate()

	s.step++
	if s.step >= s.total {
		s.state = StateFinished
	}
	return s.Current(), nil
}

// Frames returns the remaining steps as a finite lazy sequence keyed by
// step number. Breaking out of the loop leaves the stepper where it
// stopped.
func (s *Stepper) Frames() iter.Seq2[int, Snapshot] {
	return func(yield func(int, Snapshot) bool) {
		for s.state == StateReady || s.state == StateStepping {
			snap, err := s.Step()
			if err != nil {
				return
			}
			if !yield(snap.Step, snap) {
				return
			}
		}
	}
}

// Run feeds every remaining step to sink. It stops between steps when ctx
// is done or the sink fails; a step is never partially applied.
func (s *Stepper) Run(ctx context.Context, sink Sink) error {
	for s.state != StateFinished {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap, err := s.Step()
		if err != nil {
			return err
		}
		if err := sink.Consume(snap); err != nil {
			return err
		}
	}
	return nil
}

// Current returns a view of the current field without stepping.
func (s *Stepper) Current() Snapshot {
	return Snapshot{
		Step:  s.step,
		Time:  float64(s.step) * s.grid.DT(),
		Shape: Shape{NX: s.grid.NX(), NY: s.grid.NY()},
		data:  s.field.Cur(),
	}
}

// Stats measures the current field.
func (s *Stepper) Stats() Stats {
	cur := s.field.Cur()
	return Stats{
		Step:   s.step,
		Time:   float64(s.step) * s.grid.DT(),
		Energy: Energy(s.grid, cur, s.field.Prev()),
		MaxAbs: MaxAbs(cur),
	}
}

// Grid returns the grid the stepper integrates on.
func (s *Stepper) Grid() Grid { return s.grid }

// Sources returns the emitters resolved to grid cells.
func (s *Stepper) Sources() []Source { return append([]Source(nil), s.sources...) }

// Boundary returns the edge policy.
func (s *Stepper) Boundary() BoundaryPolicy { return s.boundary }

// State returns the lifecycle stage.
func (s *Stepper) State() State { return s.state }

// Steps returns how many steps have run.
func (s *Stepper) Steps() int { return s.step }

// TotalSteps returns the step budget ceil(T/dt).
func (s *Stepper) TotalSteps() int { return s.total }
