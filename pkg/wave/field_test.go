package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldStateRotateSwapsRolesWithoutCopying(t *testing.T) {
	f := NewFieldState(4)
	prev, cur, next := &f.Prev()[0], &f.Cur()[0], &f.Next()[0]

	f.Rotate()
	assert.Same(t, cur, &f.Prev()[0])
	assert.Same(t, next, &f.Cur()[0])
	assert.Same(t, prev, &f.Next()[0])

	f.Rotate()
	f.Rotate()
	assert.Same(t, prev, &f.Prev()[0])
	assert.Same(t, cur, &f.Cur()[0])
	assert.Same(t, next, &f.Next()[0])
}

func TestFieldStateLoad(t *testing.T) {
	f := NewFieldState(3)
	f.Next()[1] = 9
	f.Load([]float64{1, 2, 3})

	require.Equal(t, []float64{1, 2, 3}, f.Prev())
	require.Equal(t, []float64{1, 2, 3}, f.Cur())
	require.Equal(t, []float64{0, 0, 0}, f.Next())

	f.Cur()[0] = 7
	assert.Equal(t, 1.0, f.Prev()[0], "prev and cur must not share storage")
}

func TestGaussianFill(t *testing.T) {
	g, err := NewGrid2D(4, 4, 5, 5, 1, 0.01)
	require.NoError(t, err)
	dst := make([]float64, g.Len())
	require.NoError(t, Gaussian{CenterX: 2, CenterY: 2, Sharpness: 100, Amplitude: 3}.Fill(g, dst))

	assert.Equal(t, 3.0, dst[g.Index(2, 2)], "node (2,2) sits on the center")
	assert.Less(t, dst[g.Index(0, 0)], 1e-100)
	assert.Equal(t, dst[g.Index(1, 2)], dst[g.Index(3, 2)])
	assert.Equal(t, dst[g.Index(2, 1)], dst[g.Index(2, 3)])
}

func TestInitialConditionErrors(t *testing.T) {
	g, err := NewGrid1D(1, 4, 1, 0.01)
	require.NoError(t, err)
	dst := make([]float64, g.Len())

	assert.ErrorIs(t, Explicit{1, 2}.Fill(g, dst), ErrConfiguration)
	assert.ErrorIs(t, Gaussian{Sharpness: 0, Amplitude: 1}.Fill(g, dst), ErrConfiguration)

	require.NoError(t, Explicit{1, 2, 3, 4}.Fill(g, dst))
	assert.Equal(t, []float64{1, 2, 3, 4}, dst)
	require.NoError(t, Zero{}.Fill(g, dst))
	assert.Equal(t, []float64{0, 0, 0, 0}, dst)
}
