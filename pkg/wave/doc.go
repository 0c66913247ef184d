// Package wave integrates the scalar wave equation on 1D and 2D regular
// grids with an explicit second-order leapfrog finite-difference scheme.
//
// A Stepper owns three same-shaped buffers (previous, current, next) and
// advances them one time step per call: point sources are written into the
// current field, the interior is updated with the discrete Laplacian, the
// edge cells are handled by a BoundaryPolicy and finally the buffer roles
// rotate. Each step yields a read-only Snapshot of the new current field.
//
// The Courant number r = c·dt/dx is validated once, before the first step.
// Configurations that pass the check are integrated without any further
// numerical guard: if stability was misjudged the field may grow without
// bound or become non-finite.
package wave
