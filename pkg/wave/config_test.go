package wave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapDefaults(t *testing.T) {
	cfg, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"dims":    "2",
		"lx":      "4",
		"nx":      "80",
		"dt":      "0.02",
		"t":       "3",
		"sources": "1,2,1,1; 3,2,0.5,2",
		"damping": "0.8",
		"initial": "zero",
		"workers": "4",
		"ignored": "whatever",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Dims)
	assert.Equal(t, 4.0, cfg.LengthY, "ly follows lx when unset")
	assert.Equal(t, 80, cfg.NY, "ny follows nx when unset")
	assert.Equal(t, Damped{Coefficient: 0.8}, cfg.Boundary)
	assert.Equal(t, Zero{}, cfg.Initial)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []Emitter{
		{X: 1, Y: 2, Amplitude: 1, Frequency: 1},
		{X: 3, Y: 2, Amplitude: 0.5, Frequency: 2},
	}, cfg.Emitters)

	s, err := NewStepper(cfg)
	require.NoError(t, err)
	assert.Equal(t, 150, s.TotalSteps())
}

func TestFromMapRecentersPulse(t *testing.T) {
	cfg, err := FromMap(map[string]string{"lx": "20", "nx": "200"})
	require.NoError(t, err)
	assert.Equal(t, Gaussian{CenterX: 10, Sharpness: 100, Amplitude: 1}, cfg.Initial)

	cfg, err = FromMap(map[string]string{"lx": "20", "nx": "200", "pulse_x": "3", "pulse_k": "50"})
	require.NoError(t, err)
	assert.Equal(t, Gaussian{CenterX: 3, Sharpness: 50, Amplitude: 1}, cfg.Initial)
}

func TestFromMapErrors(t *testing.T) {
	cases := []map[string]string{
		{"nx": "ten"},
		{"dt": "fast"},
		{"boundary": "open"},
		{"boundary": "fixed", "damping": "0.5"},
		{"damping": "2"},
		{"sources": "1,2,3"},
		{"sources": "1,2,a,4"},
		{"initial": "square"},
		{"pulse_k": "sharp"},
	}
	for _, kv := range cases {
		_, err := FromMap(kv)
		assert.ErrorIs(t, err, ErrConfiguration, "%v", kv)
	}
}

func TestParseEmittersSkipsEmptyGroups(t *testing.T) {
	got, err := ParseEmitters(" ; 1,0,2,3;")
	require.NoError(t, err)
	assert.Equal(t, []Emitter{{X: 1, Y: 0, Amplitude: 2, Frequency: 3}}, got)

	got, err = ParseEmitters("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatEmittersReadsBack(t *testing.T) {
	in := []Emitter{{X: 2.5, Y: 5, Amplitude: 1, Frequency: 0.75}, {X: 7.5, Y: 5, Amplitude: 2, Frequency: 1}}
	s := FormatEmitters(in)
	assert.Equal(t, "2.5,5,1,0.75;7.5,5,2,1", s)

	out, err := ParseEmitters(s)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
