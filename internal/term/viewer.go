// Package term draws running simulations in a terminal with tcell.
package term

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"wavefd/internal/core"
	"wavefd/internal/ui"
	"wavefd/pkg/wave"
)

// shades runs from rest to full amplitude.
var shades = []rune(" .:-=+*#%@")

// Viewer renders a sim onto a tcell screen and steps it at a fixed rate.
// The caller owns the screen and must Init and Fini it.
type Viewer struct {
	screen   tcell.Screen
	sim      core.Sim
	timer    *core.FixedStep
	stepsPer int
	limit    float64
	paused   bool
	onStep   func(wave.Snapshot)
	err      error

	field *core.FloatGrid
}

// Option customises a Viewer.
type Option func(*Viewer)

// WithTPS sets how many ticks run per second.
func WithTPS(tps int) Option {
	return func(v *Viewer) { v.timer.SetTPS(tps) }
}

// WithStepsPerTick sets how many simulation steps run per tick.
func WithStepsPerTick(n int) Option {
	return func(v *Viewer) { v.stepsPer = max(1, n) }
}

// WithLimit sets the amplitude drawn at full intensity.
func WithLimit(limit float64) Option {
	return func(v *Viewer) {
		if limit > 0 {
			v.limit = limit
		}
	}
}

// WithStepHook registers fn to run after every step.
func WithStepHook(fn func(wave.Snapshot)) Option {
	return func(v *Viewer) { v.onStep = fn }
}

// NewViewer constructs a viewer for sim on screen.
func NewViewer(screen tcell.Screen, sim core.Sim, opts ...Option) *Viewer {
	size := sim.Size()
	v := &Viewer{
		screen:   screen,
		sim:      sim,
		timer:    core.NewFixedStep(30),
		stepsPer: 1,
		limit:    1,
		field:    core.NewFloatGrid(size.W, size.H),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Err returns the error of the last failed key action.
func (v *Viewer) Err() error { return v.err }

// Paused reports whether stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// StepN advances the sim by up to n steps, stopping early when it finishes.
func (v *Viewer) StepN(n int) error {
	for i := 0; i < n && !v.sim.Done(); i++ {
		if err := v.sim.Step(); err != nil {
			if errors.Is(err, wave.ErrTerminated) {
				return nil
			}
			return err
		}
		if v.onStep != nil {
			v.onStep(v.sim.Snapshot())
		}
	}
	return nil
}

// HandleEvent applies a key or resize event. It returns false when the
// user asked to quit or a step or reset failed; Err reports the failure.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.err = v.StepN(1)
			case 'r':
				v.err = v.sim.Reset()
			}
			if v.err != nil {
				return false
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw paints the current field and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	rows := h - 1
	if rows > 0 {
		v.sim.Snapshot().CopyTo(v.field.Cells())
		if v.field.H <= 1 {
			v.drawPlot(w, rows)
		} else {
			v.drawField(w, rows)
		}
	}
	st := ui.StatusOf(v.sim)
	st.Paused = v.paused
	drawText(v.screen, 0, h-1, w, st.String(), tcell.StyleDefault.Reverse(true))
	v.screen.Show()
}

func (v *Viewer) drawField(w, rows int) {
	sampled := v.field.Resample(w, rows)
	for r := 0; r < rows; r++ {
		// Row 0 is the top of the domain, the largest j.
		sy := rows - 1 - r
		for x := 0; x < w; x++ {
			ch, style := v.cell(sampled.At(x, sy))
			v.screen.SetContent(x, r, ch, nil, style)
		}
	}
}

func (v *Viewer) drawPlot(w, rows int) {
	axis := v.row(0, rows)
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, axis, '─', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	n := v.field.W
	for x := 0; x < w; x++ {
		val := v.field.At(x*n/w, 0)
		if math.IsNaN(val) {
			continue
		}
		_, style := v.cell(val)
		v.screen.SetContent(x, v.row(val, rows), '█', nil, style)
	}
}

// row maps a value in [-limit, limit] to a screen row, +limit on top.
func (v *Viewer) row(val float64, rows int) int {
	t := math.Max(-1, math.Min(1, val/v.limit))
	return int(math.Round((1 - t) / 2 * float64(rows-1)))
}

func (v *Viewer) cell(val float64) (rune, tcell.Style) {
	if math.IsNaN(val) {
		return '?', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	}
	t := math.Min(1, math.Abs(val)/v.limit)
	ch := shades[int(math.Round(t*float64(len(shades)-1)))]
	level := int32(80 + math.Round(t*175))
	col := tcell.NewRGBColor(level, level/3, level/3)
	if val < 0 {
		col = tcell.NewRGBColor(level/3, level/3, level)
	}
	return ch, tcell.StyleDefault.Foreground(col)
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= maxWidth {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < maxWidth; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// Run draws and steps until the user quits, a step fails or ctx is done.
// A user quit returns nil.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.timer.Interval())
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return v.err
			}
			v.Draw()
		case <-ticker.C:
			if !v.paused {
				if err := v.StepN(v.timer.Due() * v.stepsPer); err != nil {
					return err
				}
			}
			v.Draw()
		}
	}
}
