package wave

// Shape is the cell count per axis. NY is 1 for 1D fields.
type Shape struct {
	NX, NY int
}

// Snapshot is a read-only view of the current field after a step. It
// aliases the stepper's buffer and is only valid until the next Step;
// use Values or CopyTo to keep the data.
type Snapshot struct {
	Step  int
	Time  float64
	Shape Shape

	data []float64
}

// At returns the value of cell (i, j). j must be 0 for 1D fields.
func (s Snapshot) At(i, j int) float64 { return s.data[j*s.Shape.NX+i] }

// Len returns the number of cells.
func (s Snapshot) Len() int { return len(s.data) }

// CopyTo copies the field into dst and returns the number of values copied.
func (s Snapshot) CopyTo(dst []float64) int { return copy(dst, s.data) }

// Values returns a copy of the field in row-major order.
func (s Snapshot) Values() []float64 { return append([]float64(nil), s.data...) }

// MaxAbs returns the largest magnitude in the field.
func (s Snapshot) MaxAbs() float64 { return MaxAbs(s.data) }
