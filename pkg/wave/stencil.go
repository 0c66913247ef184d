package wave

import "golang.org/x/sync/errgroup"

// minRowsPerBand keeps bands large enough that scheduling does not dominate.
const minRowsPerBand = 8

// Update1D writes next[i] = 2(1−r²)·cur[i] − prev[i] + r²(cur[i+1] + cur[i−1])
// for every interior i. The end cells are left untouched.
func Update1D(next, cur, prev []float64, r2 float64) {
	a := 2 * (1 - r2)
	for i := 1; i < len(cur)-1; i++ {
		next[i] = a*cur[i] - prev[i] + r2*(cur[i+1]+cur[i-1])
	}
}

// Update2D applies the five-point stencil to every interior cell of an
// nx×ny row-major field. Edge rows and columns are left untouched.
func Update2D(next, cur, prev []float64, nx, ny int, r2 float64) {
	updateRows(next, cur, prev, nx, r2, 1, ny-1)
}

// Update2DParallel splits the interior rows into bands and updates them
// concurrently. Cells within a step are independent, so the result is
// bit-identical to Update2D.
func Update2DParallel(next, cur, prev []float64, nx, ny int, r2 float64, workers int) {
	rows := ny - 2
	if workers <= 1 || rows < 2*minRowsPerBand {
		Update2D(next, cur, prev, nx, ny, r2)
		return
	}
	band := max((rows+workers-1)/workers, minRowsPerBand)

	var g errgroup.Group
	g.SetLimit(workers)
	for j0 := 1; j0 < ny-1; j0 += band {
		j1 := min(j0+band, ny-1)
		g.Go(func() error {
			updateRows(next, cur, prev, nx, r2, j0, j1)
			return nil
		})
	}
	_ = g.Wait()
}

// updateRows updates rows [j0, j1) excluding the first and last column.
func updateRows(next, cur, prev []float64, nx int, r2 float64, j0, j1 int) {
	a := 2 * (1 - 2*r2)
	for j := j0; j < j1; j++ {
		base := j * nx
		center := cur[base : base+nx]
		below := cur[base-nx : base]
		above := cur[base+nx : base+2*nx]
		p := prev[base : base+nx]
		out := next[base : base+nx]
		for i := 1; i < nx-1; i++ {
			out[i] = a*center[i] - p[i] + r2*(center[i+1]+center[i-1]+above[i]+below[i])
		}
	}
}
