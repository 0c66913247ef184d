package wave

import "math"

// Grid is the immutable spatial and temporal configuration of a simulation.
// One-dimensional grids report NY() == 1.
type Grid struct {
	dims   int
	lx, ly float64
	nx, ny int
	dx, dy float64
	c, dt  float64
}

// NewGrid1D builds a grid of nx cells over [0, length].
func NewGrid1D(length float64, nx int, c, dt float64) (Grid, error) {
	if err := positive("length", length); err != nil {
		return Grid{}, err
	}
	if nx < 2 {
		return Grid{}, configErr("nx", nx, "need at least 2 cells")
	}
	g := Grid{dims: 1, lx: length, nx: nx, ny: 1, dx: length / float64(nx), c: c, dt: dt}
	g.dy = g.dx
	return g, g.validateCommon()
}

// NewGrid2D builds an nx×ny grid over [0, lx]×[0, ly]. The stencil uses a
// single Courant number, so the two spacings must agree.
func NewGrid2D(lx, ly float64, nx, ny int, c, dt float64) (Grid, error) {
	if err := positive("lx", lx); err != nil {
		return Grid{}, err
	}
	if err := positive("ly", ly); err != nil {
		return Grid{}, err
	}
	if nx < 2 {
		return Grid{}, configErr("nx", nx, "need at least 2 cells")
	}
	if ny < 2 {
		return Grid{}, configErr("ny", ny, "need at least 2 cells")
	}
	g := Grid{
		dims: 2,
		lx:   lx, ly: ly,
		nx: nx, ny: ny,
		dx: lx / float64(nx), dy: ly / float64(ny),
		c: c, dt: dt,
	}
	if err := g.validateCommon(); err != nil {
		return Grid{}, err
	}
	if math.Abs(g.dx-g.dy) > 1e-9*g.dx {
		return Grid{}, configErr("spacing", [2]float64{g.dx, g.dy}, "dx and dy must be equal")
	}
	return g, nil
}

func (g Grid) validateCommon() error {
	if err := positive("dx", g.dx); err != nil {
		return err
	}
	if err := positive("c", g.c); err != nil {
		return err
	}
	return positive("dt", g.dt)
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return configErr(field, v, "must be positive and finite")
	}
	return nil
}

// Dims returns 1 or 2.
func (g Grid) Dims() int { return g.dims }

// NX returns the cell count along x.
func (g Grid) NX() int { return g.nx }

// NY returns the cell count along y (1 for 1D grids).
func (g Grid) NY() int { return g.ny }

// LX returns the domain extent along x.
func (g Grid) LX() float64 { return g.lx }

// LY returns the domain extent along y (0 for 1D grids).
func (g Grid) LY() float64 { return g.ly }

// DX returns the cell spacing along x.
func (g Grid) DX() float64 { return g.dx }

// DY returns the cell spacing along y.
func (g Grid) DY() float64 { return g.dy }

// Speed returns the wave speed c.
func (g Grid) Speed() float64 { return g.c }

// DT returns the time step.
func (g Grid) DT() float64 { return g.dt }

// Courant returns r = c·dt/dx.
func (g Grid) Courant() float64 { return g.c * g.dt / g.dx }

// Len returns the total number of cells.
func (g Grid) Len() int { return g.nx * g.ny }

// Index returns the row-major offset of cell (i, j).
func (g Grid) Index(i, j int) int { return j*g.nx + i }

// Cell maps a physical position to the cell containing it, truncating
// toward zero. y is ignored for 1D grids.
func (g Grid) Cell(x, y float64) (int, int) {
	i := int(x / g.dx)
	if g.dims == 1 {
		return i, 0
	}
	return i, int(y / g.dy)
}

// Contains reports whether (i, j) addresses a cell of the grid.
func (g Grid) Contains(i, j int) bool {
	return i >= 0 && i < g.nx && j >= 0 && j < g.ny
}

// Interior reports whether (i, j) lies off the outermost layer of cells.
func (g Grid) Interior(i, j int) bool {
	if i < 1 || i > g.nx-2 {
		return false
	}
	if g.dims == 1 {
		return j == 0
	}
	return j >= 1 && j <= g.ny-2
}

// nodeX returns the sampling coordinate of column i. Nodes span the closed
// interval [0, L], matching the initial-condition sampling of the demos.
func (g Grid) nodeX(i int) float64 { return float64(i) * g.lx / float64(g.nx-1) }

func (g Grid) nodeY(j int) float64 {
	if g.dims == 1 {
		return 0
	}
	return float64(j) * g.ly / float64(g.ny-1)
}
