package cli

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavefd/pkg/wave"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestListNamesEveryPreset(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "interference\ninterference_custom\npulse1d\npulse2d\n", out)

	out, _, err = execute(t, "list", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "  Medium (r = 0.1000, bound 1.0000)")
	assert.Contains(t, out, "    Frequency 2: 1")
}

func TestRunPrintsStats(t *testing.T) {
	out, errOut, err := execute(t, "run", "--sim", "pulse1d", "--set", "t=0.05", "--every", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "sim=pulse1d grid=100x1")
	assert.Contains(t, lines[0], "steps=5")
	assert.Contains(t, lines[0], "boundary=fixed")
	assert.True(t, strings.HasPrefix(lines[1], "step=0 "))
	assert.True(t, strings.HasPrefix(lines[2], "step=2 "))
	assert.True(t, strings.HasPrefix(lines[3], "step=4 "))
	assert.True(t, strings.HasPrefix(lines[4], "step=5 "))
	assert.Contains(t, errOut, "finished 5 steps")
}

func TestRunRejectsUnstableConfigWithoutStepping(t *testing.T) {
	out, _, err := execute(t, "run", "--set", "dt=0.5")
	require.Error(t, err)
	assert.ErrorIs(t, err, wave.ErrConfiguration)
	assert.NotContains(t, out, "step=")
}

func TestRunWarnsAboveTwoDimensionalBound(t *testing.T) {
	_, errOut, err := execute(t, "run", "--sim", "pulse2d",
		"--set", "nx=20", "--set", "ny=20", "--set", "dt=0.4", "--set", "t=0.4", "--every", "0")
	require.NoError(t, err)
	assert.Contains(t, errOut, "courant number 0.8000 exceeds the 2D bound 0.7071")
}

func TestRunReadsEnvFileAndSetWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.env")
	require.NoError(t, os.WriteFile(path, []byte("T=0.02\nnx=50\n"), 0o644))

	out, _, err := execute(t, "run", "--env-file", path, "--set", "nx=60", "--every", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "grid=60x1")
	assert.Contains(t, out, "steps=2")
}

func TestRunRejectsUnknownSim(t *testing.T) {
	_, _, err := execute(t, "run", "--sim", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sim")

	_, _, err = execute(t, "run", "--set", "novalue")
	require.Error(t, err)
}

func TestSweepClassifiesCombinations(t *testing.T) {
	results, err := Sweep(context.Background(), "pulse1d", map[string]string{"t": "0.5"},
		[]float64{0.01, 0.05, 0.5}, []int{50, 100}, 3)
	require.NoError(t, err)
	require.Len(t, results, 6)

	byKey := map[[2]float64]SweepResult{}
	for _, r := range results {
		byKey[[2]float64{float64(r.NX), r.DT}] = r
	}

	ok := byKey[[2]float64{50, 0.05}]
	assert.True(t, ok.Accepted)
	assert.InDelta(t, 0.25, ok.Courant, 1e-12)
	assert.Equal(t, 10, ok.Steps)
	assert.InDelta(t, 1, ok.EnergyRatio, 0.2)

	bad := byKey[[2]float64{100, 0.5}]
	assert.False(t, bad.Accepted)
	assert.InDelta(t, 5.0, bad.Courant, 1e-12)
	assert.Contains(t, bad.Reason, "courant")
	assert.True(t, math.IsNaN(bad.EnergyRatio))
}

func TestSweepCommand(t *testing.T) {
	out, _, err := execute(t, "sweep", "--sim", "pulse1d", "--set", "t=0.1", "--dt", "0.01,0.5", "--nx", "50", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Sweeping 2 combinations of pulse1d")
	assert.Contains(t, out, "accepted")
	assert.Contains(t, out, "rejected")

	_, _, err = execute(t, "sweep", "--dt", "fast")
	require.Error(t, err)
}

func TestProbeCell(t *testing.T) {
	sim, err := buildSim("interference", map[string]string{"nx": "40", "ny": "40", "t": "0.1"})
	require.NoError(t, err)

	i, j, err := probeCell(sim, "")
	require.NoError(t, err)
	assert.Equal(t, [2]int{11, 20}, [2]int{i, j})

	i, j, err = probeCell(sim, "3, 4")
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 4}, [2]int{i, j})

	_, _, err = probeCell(sim, "40,0")
	assert.Error(t, err)
	_, _, err = probeCell(sim, "x")
	assert.Error(t, err)

	pulse, err := buildSim("pulse1d", nil)
	require.NoError(t, err)
	i, j, err = probeCell(pulse, "")
	require.NoError(t, err)
	assert.Equal(t, [2]int{50, 0}, [2]int{i, j})
}
