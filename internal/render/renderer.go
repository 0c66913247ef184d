//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"wavefd/internal/core"
	"wavefd/pkg/wave"
)

// GridPainter uploads field snapshots into a single RGBA image.
type GridPainter struct {
	size   core.Size
	w, h   int
	img    *ebiten.Image
	buf    []byte
	values []float64
}

// NewGridPainter allocates a painter for a field of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	w, h := ImageSize(size)
	return &GridPainter{
		size:   size,
		w:      w,
		h:      h,
		img:    ebiten.NewImage(w, h),
		buf:    make([]byte, 4*w*h),
		values: make([]float64, size.W*size.H),
	}
}

// Blit paints snap with style and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, snap wave.Snapshot, style Style, scale int) {
	if snap.Len() != len(gp.values) {
		return
	}
	snap.CopyTo(gp.values)
	style.Fill(gp.buf, gp.size, gp.values)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
