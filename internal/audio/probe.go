// Package audio turns the field value at one cell into sound.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"

	"wavefd/pkg/wave"
)

// SampleRate is the output rate used by the wavesim viewer.
const SampleRate = beep.SampleRate(44100)

// Probe is a beep.Streamer that plays the most recent probe value. A
// one-pole high-pass filter removes the DC offset so a displaced but
// still cell is silent. Output is clamped to [-1, 1].
type Probe struct {
	mu    sync.Mutex
	gain  float64
	alpha float64
	mean  float64
	value float64
}

var _ beep.Streamer = (*Probe)(nil)

// NewProbe returns a probe scaling the field by gain. Each Set moves the
// DC estimate by the fraction alpha of the difference.
func NewProbe(gain, alpha float64) *Probe {
	if gain == 0 {
		gain = 1
	}
	if alpha <= 0 || alpha > 1 {
		alpha = 0.01
	}
	return &Probe{gain: gain, alpha: alpha}
}

// Set records a new field sample. It is called from the stepping
// goroutine while the speaker drains Stream.
func (p *Probe) Set(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	p.mu.Lock()
	p.mean += p.alpha * (v - p.mean)
	p.value = v - p.mean
	p.mu.Unlock()
}

// Value returns the AC-coupled, scaled and clamped output level.
func (p *Probe) Value() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return math.Max(-1, math.Min(1, p.gain*p.value))
}

// Stream fills samples with the current level on both channels. It never
// drains.
func (p *Probe) Stream(samples [][2]float64) (int, bool) {
	v := p.Value()
	for i := range samples {
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err always returns nil.
func (p *Probe) Err() error { return nil }

// Listen returns a step hook sampling cell (i, j).
func (p *Probe) Listen(i, j int) func(wave.Snapshot) {
	return func(s wave.Snapshot) {
		if i < 0 || j < 0 || i >= s.Shape.NX || j >= s.Shape.NY {
			return
		}
		p.Set(s.At(i, j))
	}
}
