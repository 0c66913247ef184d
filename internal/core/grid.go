package core

import "math"

// FloatGrid stores a 2D grid of float64 values in row-major order. Viewers
// use it to hold a private copy of a snapshot.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y).
func (g *FloatGrid) At(x, y int) float64 { return g.data[g.Index(x, y)] }

// Range returns the smallest and largest finite values. An empty or
// all-non-finite grid reports (0, 0).
func (g *FloatGrid) Range() (lo, hi float64) {
	first := true
	for _, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if first {
			lo, hi, first = v, v, false
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Resample returns a w×h nearest-neighbour copy of g.
func (g *FloatGrid) Resample(w, h int) *FloatGrid {
	out := NewFloatGrid(w, h)
	for y := 0; y < out.H; y++ {
		sy := y * g.H / out.H
		for x := 0; x < out.W; x++ {
			sx := x * g.W / out.W
			out.data[out.Index(x, y)] = g.At(sx, sy)
		}
	}
	return out
}
