package render

import (
	"image/color"
	"math"

	"wavefd/internal/core"
)

// Palette selects how a 2D field is colored.
type Palette int

const (
	// PaletteGray is a linear black-to-white ramp over [-Limit, Limit].
	PaletteGray Palette = iota
	// PaletteDiverging is blue for troughs and red for crests.
	PaletteDiverging
)

// PlotHeight is the pixel height used for 1D line plots.
const PlotHeight = 200

// Style controls how snapshots are painted.
type Style struct {
	Palette    Palette
	Limit      float64
	Line       color.RGBA
	Background color.RGBA
}

// DefaultStyle returns a gray palette with unit limits and a white line on
// black for 1D fields.
func DefaultStyle() Style {
	return Style{
		Palette:    PaletteGray,
		Limit:      1,
		Line:       color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Background: color.RGBA{A: 255},
	}
}

// limiter is implemented by sims that know their natural color range.
type limiter interface {
	Limit() float64
}

// StyleFor returns DefaultStyle with the limit taken from sim when it
// reports one, else from the peak of its current field.
func StyleFor(sim core.Sim) Style {
	s := DefaultStyle()
	if l, ok := sim.(limiter); ok && l.Limit() > 0 {
		s.Limit = l.Limit()
		return s
	}
	if peak := fieldPeak(sim); peak > 0 {
		s.Limit = peak
	}
	return s
}

// fieldPeak returns the largest finite magnitude in the sim's field.
func fieldPeak(sim core.Sim) float64 {
	size := sim.Size()
	g := core.NewFloatGrid(size.W, size.H)
	sim.Snapshot().CopyTo(g.Cells())
	lo, hi := g.Range()
	return math.Max(math.Abs(lo), math.Abs(hi))
}

// ImageSize returns the pixel dimensions used to paint a field of size.
// 1D fields are drawn as a plot PlotHeight pixels tall.
func ImageSize(size core.Size) (int, int) {
	if size.H <= 1 {
		return size.W, PlotHeight
	}
	return size.W, size.H
}

// Fill paints values (row-major, size.W×size.H) into buf, which must hold
// the RGBA pixels of ImageSize(size).
func (s Style) Fill(buf []byte, size core.Size, values []float64) {
	if size.H <= 1 {
		w, h := ImageSize(size)
		Plot1D(buf, w, h, values, -s.Limit, s.Limit, s.Line, s.Background)
		return
	}
	switch s.Palette {
	case PaletteDiverging:
		FillDivergingRGBA(buf, values, s.Limit)
	default:
		FillGrayRGBA(buf, values, -s.Limit, s.Limit)
	}
}
