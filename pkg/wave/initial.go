package wave

import "math"

// InitialCondition fills the field at t = 0.
type InitialCondition interface {
	Fill(g Grid, dst []float64) error
}

// Zero starts from a field at rest; all motion comes from sources.
type Zero struct{}

// Fill clears dst.
func (Zero) Fill(_ Grid, dst []float64) error {
	clear(dst)
	return nil
}

// Gaussian is the pulse A·exp(-k·((x-cx)² + (y-cy)²)).
type Gaussian struct {
	CenterX   float64
	CenterY   float64
	Sharpness float64
	Amplitude float64
}

// DefaultGaussian returns a unit pulse with k = 100 centered in the domain.
func DefaultGaussian(g Grid) Gaussian {
	return Gaussian{CenterX: g.LX() / 2, CenterY: g.LY() / 2, Sharpness: 100, Amplitude: 1}
}

// Fill samples the pulse at the grid nodes.
func (p Gaussian) Fill(g Grid, dst []float64) error {
	if err := positive("pulse sharpness", p.Sharpness); err != nil {
		return err
	}
	for _, v := range []float64{p.CenterX, p.CenterY, p.Amplitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return configErr("pulse", p, "parameters must be finite")
		}
	}
	for j := 0; j < g.NY(); j++ {
		dy := 0.0
		if g.Dims() == 2 {
			dy = g.nodeY(j) - p.CenterY
		}
		row := dst[j*g.NX() : (j+1)*g.NX()]
		for i := range row {
			dx := g.nodeX(i) - p.CenterX
			row[i] = p.Amplitude * math.Exp(-p.Sharpness*(dx*dx+dy*dy))
		}
	}
	return nil
}

// Explicit is a caller-supplied field in row-major order.
type Explicit []float64

// Fill copies the values after checking the shape.
func (e Explicit) Fill(g Grid, dst []float64) error {
	if len(e) != g.Len() {
		return configErr("initial field", len(e), "expected %d values", g.Len())
	}
	copy(dst, e)
	return nil
}
