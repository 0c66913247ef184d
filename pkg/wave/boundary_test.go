package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestDampedScalesEveryEdgeCellOnce(t *testing.T) {
	_, err := NewGrid2D(1, 1, 4, 3, 1, 0.01)
	require.Error(t, err, "4x3 over a square domain has unequal spacing")

	g, err := NewGrid2D(4, 3, 4, 3, 1, 0.01)
	require.NoError(t, err)

	next := filled(g.Len(), 2)
	cur := filled(g.Len(), 2)
	Damped{Coefficient: 0.5}.Apply(next, cur, g)

	for j := 0; j < g.NY(); j++ {
		for i := 0; i < g.NX(); i++ {
			want := 1.0
			if g.Interior(i, j) {
				want = 2
			}
			assert.Equal(t, want, next[g.Index(i, j)], "cell (%d,%d)", i, j)
		}
	}
}

func TestDampedUnitCoefficientCarriesEdgesForward(t *testing.T) {
	g, err := NewGrid1D(1, 6, 1, 0.01)
	require.NoError(t, err)
	next := []float64{9, 1, 2, 3, 4, 9}
	cur := []float64{-3, 0, 0, 0, 0, 5}
	Damped{Coefficient: 1}.Apply(next, cur, g)
	assert.Equal(t, []float64{-3, 1, 2, 3, 4, 5}, next)
}

func TestDampedStrictlyShrinksEdgeMagnitude(t *testing.T) {
	g, err := NewGrid2D(1, 1, 5, 5, 1, 0.01)
	require.NoError(t, err)
	cur := make([]float64, g.Len())
	for i := range cur {
		cur[i] = math.Pow(-1, float64(i)) * float64(i+1)
	}
	before := append([]float64(nil), cur...)
	next := append([]float64(nil), cur...)

	Damped{Coefficient: 0.9}.Apply(next, cur, g)
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			idx := g.Index(i, j)
			if g.Interior(i, j) {
				assert.Equal(t, before[idx], next[idx])
				continue
			}
			assert.Less(t, math.Abs(next[idx]), math.Abs(before[idx]))
		}
	}
}

func TestFixedZeroesEdges1D(t *testing.T) {
	g, err := NewGrid1D(1, 4, 1, 0.01)
	require.NoError(t, err)
	next := []float64{1, 2, 3, 4}
	Fixed{}.Apply(next, []float64{5, 5, 5, 5}, g)
	assert.Equal(t, []float64{0, 2, 3, 0}, next)
}

func edgeConfig(b BoundaryPolicy) Config {
	initial := make(Explicit, 10)
	initial[0], initial[9] = 1, 1
	return Config{
		Dims:     1,
		LengthX:  10,
		NX:       10,
		Duration: 1,
		DT:       0.1,
		Speed:    1,
		Boundary: b,
		Initial:  initial,
	}
}

func TestDampedEdgesDecayEveryStep(t *testing.T) {
	s, err := NewStepper(edgeConfig(Damped{Coefficient: 0.5}))
	require.NoError(t, err)

	prev := 1.0
	for k, snap := range s.Frames() {
		want := math.Pow(0.5, float64(k))
		assert.InDelta(t, want, snap.At(0, 0), 1e-15, "left edge after step %d", k)
		assert.InDelta(t, want, snap.At(9, 0), 1e-15, "right edge after step %d", k)
		assert.Less(t, snap.At(0, 0), prev, "step %d", k)
		prev = snap.At(0, 0)
	}
	assert.Equal(t, 10, s.Steps())
}

func TestDampedUnitCoefficientHoldsEdges(t *testing.T) {
	s, err := NewStepper(edgeConfig(Damped{Coefficient: 1}))
	require.NoError(t, err)

	for k, snap := range s.Frames() {
		assert.Equal(t, 1.0, snap.At(0, 0), "step %d", k)
		assert.Equal(t, 1.0, snap.At(9, 0), "step %d", k)
	}
}

func TestFixedZeroesEdgesFromTheFirstStep(t *testing.T) {
	s, err := NewStepper(edgeConfig(Fixed{}))
	require.NoError(t, err)

	snap, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 0.0, snap.At(0, 0))
	assert.Equal(t, 0.0, snap.At(9, 0))
}

func TestNilPointerPoliciesAreRejected(t *testing.T) {
	for _, b := range []BoundaryPolicy{nil, (*Fixed)(nil), (*Damped)(nil)} {
		s, err := NewStepper(edgeConfig(b))
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrConfiguration, "%#v", b)
	}

	s, err := NewStepper(edgeConfig(&Fixed{}))
	require.NoError(t, err)
	assert.Equal(t, "fixed", s.Boundary().String())
}

func TestParseBoundary(t *testing.T) {
	b, err := ParseBoundary("fixed")
	require.NoError(t, err)
	assert.Equal(t, Fixed{}, b)

	b, err = ParseBoundary("Damped")
	require.NoError(t, err)
	assert.Equal(t, Damped{Coefficient: DefaultDamping}, b)

	b, err = ParseBoundary("damped:0.75")
	require.NoError(t, err)
	assert.Equal(t, Damped{Coefficient: 0.75}, b)
	assert.Equal(t, "damped:0.75", b.String())

	for _, bad := range []string{"", "open", "damped:1.5", "damped:-0.1", "damped:x", "fixed:0.5", "damped:NaN"} {
		_, err := ParseBoundary(bad)
		assert.ErrorIs(t, err, ErrConfiguration, bad)
	}
}
