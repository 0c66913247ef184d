package wave

const (
	rolePrev = iota
	roleCur
	roleNext
)

// FieldState stores the three time levels required by the leapfrog scheme.
// The slots are allocated once; Rotate reassigns their roles.
type FieldState struct {
	slots [3][]float64
	roles [3]int
}

// NewFieldState allocates three zeroed buffers of n cells each.
func NewFieldState(n int) *FieldState {
	f := &FieldState{roles: [3]int{0, 1, 2}}
	for i := range f.slots {
		f.slots[i] = make([]float64, n)
	}
	return f
}

// Len returns the number of cells per buffer.
func (f *FieldState) Len() int { return len(f.slots[0]) }

// Prev returns the buffer holding the previous time level.
func (f *FieldState) Prev() []float64 { return f.slots[f.roles[rolePrev]] }

// Cur returns the buffer holding the current time level.
func (f *FieldState) Cur() []float64 { return f.slots[f.roles[roleCur]] }

// Next returns the write target of the step in progress.
func (f *FieldState) Next() []float64 { return f.slots[f.roles[roleNext]] }

// Rotate advances the roles: prev ← cur, cur ← next, next ← old prev.
func (f *FieldState) Rotate() {
	r := f.roles
	f.roles = [3]int{r[roleCur], r[roleNext], r[rolePrev]}
}

// Load writes initial into both prev and cur (zero initial velocity) and
// clears next.
func (f *FieldState) Load(initial []float64) {
	copy(f.Prev(), initial)
	copy(f.Cur(), initial)
	clear(f.Next())
}
