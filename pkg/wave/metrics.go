package wave

import "math"

// Stats summarizes the field after a step.
type Stats struct {
	Step   int
	Time   float64
	Energy float64
	MaxAbs float64
}

// Energy returns the discrete energy
//
//	½ Σ ((cur−prev)/dt)² + ½ c² Σ |∇cur|²
//
// scaled by the cell size, with one-sided differences along every link
// between neighbouring cells. It stays bounded for stable configurations.
func Energy(g Grid, cur, prev []float64) float64 {
	dt := g.DT()
	var kinetic float64
	for i := range cur {
		v := (cur[i] - prev[i]) / dt
		kinetic += v * v
	}

	nx, ny := g.NX(), g.NY()
	dx, dy := g.DX(), g.DY()
	var potential float64
	for j := 0; j < ny; j++ {
		row := cur[j*nx : (j+1)*nx]
		for i := 0; i+1 < nx; i++ {
			d := (row[i+1] - row[i]) / dx
			potential += d * d
		}
		if g.Dims() == 2 && j+1 < ny {
			up := cur[(j+1)*nx : (j+2)*nx]
			for i := range row {
				d := (up[i] - row[i]) / dy
				potential += d * d
			}
		}
	}

	cell := dx
	if g.Dims() == 2 {
		cell *= dy
	}
	c := g.Speed()
	return 0.5 * (kinetic + c*c*potential) * cell
}

// MaxAbs returns the largest magnitude in values, or NaN if any value is NaN.
func MaxAbs(values []float64) float64 {
	var m float64
	for _, v := range values {
		if math.IsNaN(v) {
			return v
		}
		m = math.Max(m, math.Abs(v))
	}
	return m
}
