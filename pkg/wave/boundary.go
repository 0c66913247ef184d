package wave

import (
	"strconv"
	"strings"
)

// BoundaryPolicy decides the edge cells of the freshly computed field from
// the current one. The stencil never writes the outermost layer; Apply is
// the only code that does.
type BoundaryPolicy interface {
	Apply(next, cur []float64, g Grid)
	String() string
}

// Fixed pins every edge cell to zero, giving reflecting walls.
type Fixed struct{}

// Apply zeroes the edge cells of next.
func (Fixed) Apply(next, _ []float64, g Grid) {
	forEachEdge(g, func(idx int) { next[idx] = 0 })
}

func (Fixed) String() string { return "fixed" }

// Damped multiplies every edge cell by Coefficient each step. Edge cells
// receive no stencil contribution, so their values decay geometrically.
// A coefficient of 1 holds the edges at their current values.
type Damped struct {
	Coefficient float64
}

// Apply sets each edge cell of next to Coefficient times its value in cur.
func (d Damped) Apply(next, cur []float64, g Grid) {
	k := d.Coefficient
	forEachEdge(g, func(idx int) { next[idx] = k * cur[idx] })
}

func (d Damped) String() string {
	return "damped:" + strconv.FormatFloat(d.Coefficient, 'f', -1, 64)
}

// forEachEdge visits every cell of the outermost layer exactly once.
func forEachEdge(g Grid, fn func(idx int)) {
	nx, ny := g.NX(), g.NY()
	if g.Dims() == 1 {
		fn(0)
		fn(nx - 1)
		return
	}
	last := (ny - 1) * nx
	for i := 0; i < nx; i++ {
		fn(i)
		fn(last + i)
	}
	for j := 1; j < ny-1; j++ {
		fn(j * nx)
		fn(j*nx + nx - 1)
	}
}

// validateBoundary accepts the Fixed and Damped values and non-nil
// pointers to them. Other implementations are trusted as given.
func validateBoundary(b BoundaryPolicy) error {
	switch p := b.(type) {
	case nil:
		return configErr("boundary", nil, "policy is required")
	case Fixed:
	case *Fixed:
		if p == nil {
			return configErr("boundary", nil, "policy is required")
		}
	case Damped:
		if !(p.Coefficient >= 0 && p.Coefficient <= 1) {
			return configErr("damping", p.Coefficient, "must be within [0, 1]")
		}
	case *Damped:
		if p == nil {
			return configErr("boundary", nil, "policy is required")
		}
		return validateBoundary(*p)
	}
	return nil
}

// ParseBoundary accepts "fixed", "damped" (coefficient 0.9) or
// "damped:<coefficient>".
func ParseBoundary(s string) (BoundaryPolicy, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(strings.ToLower(s)), ":")
	switch name {
	case "fixed":
		if hasArg {
			return nil, configErr("boundary", s, "fixed takes no coefficient")
		}
		return Fixed{}, nil
	case "damped":
		d := Damped{Coefficient: DefaultDamping}
		if hasArg {
			k, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, configErr("damping", arg, "not a number")
			}
			d.Coefficient = k
		}
		if err := validateBoundary(d); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, configErr("boundary", s, "expected fixed or damped[:k]")
}

// DefaultDamping is the edge coefficient used when none is given.
const DefaultDamping = 0.9
