package wave

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid1DDerivesSpacingAndCourant(t *testing.T) {
	g, err := NewGrid1D(10, 100, 1, 0.01)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Dims())
	assert.Equal(t, 100, g.Len())
	assert.Equal(t, 1, g.NY())
	assert.InDelta(t, 0.1, g.DX(), 1e-15)
	assert.InDelta(t, 0.1, g.Courant(), 1e-12)
}

func TestNewGrid2DRejectsUnequalSpacing(t *testing.T) {
	_, err := NewGrid2D(10, 5, 100, 100, 1, 0.01)
	require.ErrorIs(t, err, ErrConfiguration)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "spacing", cfgErr.Field)
}

func TestNewGridRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
		field string
	}{
		{"zero length", func() error { _, err := NewGrid1D(0, 10, 1, 0.01); return err }, "length"},
		{"negative length", func() error { _, err := NewGrid1D(-1, 10, 1, 0.01); return err }, "length"},
		{"one cell", func() error { _, err := NewGrid1D(1, 1, 1, 0.01); return err }, "nx"},
		{"zero cells", func() error { _, err := NewGrid1D(1, 0, 1, 0.01); return err }, "nx"},
		{"nan speed", func() error { _, err := NewGrid1D(1, 10, math.NaN(), 0.01); return err }, "c"},
		{"zero dt", func() error { _, err := NewGrid1D(1, 10, 1, 0); return err }, "dt"},
		{"2d zero ly", func() error { _, err := NewGrid2D(1, 0, 10, 10, 1, 0.01); return err }, "ly"},
		{"2d one row", func() error { _, err := NewGrid2D(1, 1, 10, 1, 1, 0.01); return err }, "ny"},
		{"2d inf dt", func() error { _, err := NewGrid2D(1, 1, 10, 10, 1, math.Inf(1)); return err }, "dt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			require.ErrorIs(t, err, ErrConfiguration)
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestGridCellTruncates(t *testing.T) {
	g, err := NewGrid2D(10, 10, 200, 200, 1, 0.005)
	require.NoError(t, err)

	i, j := g.Cell(10.0/4, 10.0/2)
	assert.Equal(t, 50, i)
	assert.Equal(t, 100, j)
	i, j = g.Cell(3*10.0/4, 10.0/2)
	assert.Equal(t, 150, i)
	assert.Equal(t, 100, j)
	assert.Equal(t, 100*200+50, g.Index(50, 100))
}

func TestGridInterior(t *testing.T) {
	g1, err := NewGrid1D(1, 5, 1, 0.01)
	require.NoError(t, err)
	assert.False(t, g1.Interior(0, 0))
	assert.True(t, g1.Interior(1, 0))
	assert.True(t, g1.Interior(3, 0))
	assert.False(t, g1.Interior(4, 0))
	assert.False(t, g1.Interior(2, 1))

	g2, err := NewGrid2D(1, 1, 4, 4, 1, 0.01)
	require.NoError(t, err)
	assert.True(t, g2.Interior(1, 2))
	assert.False(t, g2.Interior(1, 0))
	assert.False(t, g2.Interior(3, 1))
	assert.True(t, g2.Contains(3, 3))
	assert.False(t, g2.Contains(4, 0))
}

func TestCheckStability(t *testing.T) {
	g, err := NewGrid1D(1, 2, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, g.Courant(), 1e-12)

	err = CheckStability(g)
	require.ErrorIs(t, err, ErrConfiguration)
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "courant", cfgErr.Field)

	edge, err := NewGrid1D(1, 10, 1, 0.1)
	require.NoError(t, err)
	assert.NoError(t, CheckStability(edge), "r == 1 is allowed")
}

func TestCheckStabilityUsesOneDimensionalBoundIn2D(t *testing.T) {
	// r = 0.9 is above 1/√2 but passes the documented 1D-style check.
	g, err := NewGrid2D(1, 1, 10, 10, 1, 0.09)
	require.NoError(t, err)
	assert.NoError(t, CheckStability(g))
	assert.InDelta(t, 1/math.Sqrt2, StrictBound(g), 1e-15)
}
