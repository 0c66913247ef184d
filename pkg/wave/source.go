package wave

import "math"

// Source is a continuous sinusoidal emitter pinned to one cell.
type Source struct {
	I, J      int
	Amplitude float64
	Frequency float64
}

// SourceAt places an emitter at the cell containing (x, y).
func SourceAt(g Grid, x, y, amplitude, frequency float64) Source {
	i, j := g.Cell(x, y)
	return Source{I: i, J: j, Amplitude: amplitude, Frequency: frequency}
}

// Value returns the forcing A·sin(2π·f·t).
func (s Source) Value(t float64) float64 {
	return s.Amplitude * math.Sin(2*math.Pi*s.Frequency*t)
}

func validateSources(g Grid, sources []Source) error {
	for k, s := range sources {
		if !g.Interior(s.I, s.J) {
			return configErr("source", k, "cell (%d,%d) is not an interior cell", s.I, s.J)
		}
		if math.IsNaN(s.Amplitude) || math.IsInf(s.Amplitude, 0) {
			return configErr("source amplitude", s.Amplitude, "must be finite")
		}
		if math.IsNaN(s.Frequency) || math.IsInf(s.Frequency, 0) {
			return configErr("source frequency", s.Frequency, "must be finite")
		}
	}
	return nil
}

// Inject overwrites the source cells of cur with their forcing at time t.
// Sources sharing a cell do not accumulate: the last one wins.
func Inject(cur []float64, g Grid, sources []Source, t float64) {
	for _, s := range sources {
		cur[g.Index(s.I, s.J)] = s.Value(t)
	}
}
