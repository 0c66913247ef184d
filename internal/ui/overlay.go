//go:build ebiten

package ui

import (
	"image/color"

	"wavefd/internal/core"
	"wavefd/pkg/wave"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sourceProvider interface {
	Sources() []wave.Source
}

// Overlay marks emitter cells on top of the field. Key 1 toggles it.
type Overlay struct {
	sim         core.Sim
	scale       int
	showSources bool
	pixel       *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showSources: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSources = !o.showSources
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showSources || o.sim.Size().H <= 1 {
		return
	}
	provider, ok := o.sim.(sourceProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	marker := float64(max(3, scale*2))
	for _, src := range provider.Sources() {
		cx := (float64(src.I) + 0.5) * float64(scale)
		cy := (float64(src.J) + 0.5) * float64(scale)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(marker, marker)
		op.GeoM.Translate(cx-marker/2, cy-marker/2)
		op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 200, B: 40, A: 255})
		screen.DrawImage(o.pixel, op)
	}
}
