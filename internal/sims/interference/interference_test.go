package interference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavefd/internal/core"
	"wavefd/pkg/wave"
)

func TestDefaultsResolveEmitterCells(t *testing.T) {
	s, err := New(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, core.Size{W: 200, H: 200}, s.Size())
	assert.Equal(t, 1000, s.Stepper().TotalSteps())
	assert.InDelta(t, 0.1, s.Stepper().Grid().Courant(), 1e-12)

	src := s.Stepper().Sources()
	require.Len(t, src, 2)
	assert.Equal(t, [2]int{50, 100}, [2]int{src[0].I, src[0].J})
	assert.Equal(t, [2]int{150, 100}, [2]int{src[1].I, src[1].J})
	assert.Equal(t, wave.Damped{Coefficient: 0.9}, s.Stepper().Boundary())
}

func TestSharedTuning(t *testing.T) {
	cfg, err := FromMap(map[string]string{"freq": "2", "amp": "0.5"})
	require.NoError(t, err)
	for _, e := range cfg.Emitters {
		assert.Equal(t, 2.0, e.Frequency)
		assert.Equal(t, 0.5, e.Amplitude)
	}

	_, err = FromMap(map[string]string{"amp": "loud"})
	assert.ErrorIs(t, err, wave.ErrConfiguration)
}

func TestCustomTuning(t *testing.T) {
	cfg, err := FromMapCustom(map[string]string{"freq2": "3", "amp1": "-2"})
	require.NoError(t, err)
	assert.Equal(t, DefaultFrequency, cfg.Emitters[0].Frequency)
	assert.Equal(t, -2.0, cfg.Emitters[0].Amplitude)
	assert.Equal(t, 3.0, cfg.Emitters[1].Frequency)
	assert.Equal(t, DefaultAmplitude, cfg.Emitters[1].Amplitude)

	s, err := NewCustom(cfg)
	require.NoError(t, err)
	assert.Equal(t, CustomName, s.Name())
	assert.Equal(t, 2.0, s.Limit())

	snap := s.Parameters()
	p, ok := snap.Lookup("freq2")
	require.True(t, ok)
	assert.Equal(t, "3", p.Value)
	_, ok = snap.Lookup("freq")
	assert.False(t, ok)
}

func TestEmittersDriveTheField(t *testing.T) {
	factory, ok := core.Sims()[Name]
	require.True(t, ok)
	s, err := factory(map[string]string{"t": "0.1"})
	require.NoError(t, err)

	for !s.Done() {
		require.NoError(t, s.Step())
	}
	snap := s.Snapshot()
	assert.Greater(t, math.Abs(snap.At(51, 100)), 0.0)
	assert.InDelta(t, snap.At(51, 100), snap.At(149, 100), 1e-12)
	assert.Zero(t, snap.At(100, 20), "the wavefront has not reached far cells yet")
}

func TestRegistryHasBothVariants(t *testing.T) {
	names := core.Names()
	assert.Contains(t, names, Name)
	assert.Contains(t, names, CustomName)
}
