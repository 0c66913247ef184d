package wave

import "math"

// CheckStability rejects grids whose Courant number exceeds 1.
//
// The same bound is applied to 2D grids even though the five-point stencil
// is only stable for r ≤ 1/√2 there; see StrictBound.
func CheckStability(g Grid) error {
	r := g.Courant()
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return configErr("courant", r, "not finite")
	}
	if r > 1 {
		return configErr("courant", r, "exceeds stability bound 1; reduce dt, increase dx or reduce c")
	}
	return nil
}

// StrictBound returns the rigorous Courant limit of the stencil for g.
func StrictBound(g Grid) float64 {
	if g.Dims() == 2 {
		return 1 / math.Sqrt2
	}
	return 1
}
