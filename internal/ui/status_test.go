package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavefd/internal/core"
	"wavefd/internal/sims"
	"wavefd/pkg/wave"
)

func TestStatusOfTracksSim(t *testing.T) {
	cfg := wave.DefaultConfig()
	cfg.Duration = 0.05
	s, err := sims.New("pulse", cfg)
	require.NoError(t, err)

	st := StatusOf(s)
	assert.Equal(t, "pulse", st.Name)
	assert.Equal(t, 5, st.Total)
	assert.True(t, st.HasStats)
	assert.Greater(t, st.Energy, 0.0)

	for !s.Done() {
		require.NoError(t, s.Step())
	}
	st = StatusOf(s)
	assert.Equal(t, 5, st.Step)
	assert.True(t, st.Done)
	assert.Contains(t, st.String(), "step 5/5")
	assert.Contains(t, st.String(), "[done]")
}

func TestStatusString(t *testing.T) {
	st := Status{Name: "x", Step: 3, Time: 0.25, Paused: true}
	assert.Equal(t, "x  step 3  t=0.250  [paused]", st.String())
}

func TestParameterLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{core.IntParam("nx", "Cells X", 10)}},
		{Name: "Medium", Summary: "r = 0.1", Params: []core.Parameter{{Key: "c", Value: "1"}}},
	}}
	assert.Equal(t, []string{
		"Grid",
		"  Cells X: 10",
		"Medium (r = 0.1)",
		"  c: 1",
	}, ParameterLines(snap))
}
