package render

import (
	"image/color"
	"math"
)

// NaNColor marks cells whose value is not a number.
var NaNColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// FillGrayRGBA maps values linearly from [vmin, vmax] onto black..white.
// Values outside the range are clamped; an empty range paints mid gray.
func FillGrayRGBA(buf []byte, values []float64, vmin, vmax float64) {
	span := vmax - vmin
	for i, v := range values {
		base := i * 4
		if math.IsNaN(v) {
			putRGBA(buf[base:], NaNColor)
			continue
		}
		t := 0.5
		if span > 0 {
			t = clamp((v-vmin)/span, 0, 1)
		}
		g := uint8(math.Round(t * 255))
		putRGBA(buf[base:], color.RGBA{R: g, G: g, B: g, A: 255})
	}
}

// FillDivergingRGBA maps values in [-limit, limit] onto blue..white..red so
// zero is white. A non-positive limit is treated as 1.
func FillDivergingRGBA(buf []byte, values []float64, limit float64) {
	if !(limit > 0) {
		limit = 1
	}
	for i, v := range values {
		base := i * 4
		if math.IsNaN(v) {
			putRGBA(buf[base:], NaNColor)
			continue
		}
		t := clamp(v/limit, -1, 1)
		fade := uint8(math.Round((1 - math.Abs(t)) * 255))
		col := color.RGBA{R: 255, G: fade, B: fade, A: 255}
		if t < 0 {
			col = color.RGBA{R: fade, G: fade, B: 255, A: 255}
		}
		putRGBA(buf[base:], col)
	}
}

// Plot1D rasterizes values as a line graph into a w×h RGBA buffer with
// ymax on the top row and ymin on the bottom row. Consecutive columns are
// joined vertically so steep fronts stay connected.
func Plot1D(buf []byte, w, h int, values []float64, ymin, ymax float64, line, bg color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < w*h; i++ {
		putRGBA(buf[i*4:], bg)
	}
	if len(values) == 0 || !(ymax > ymin) {
		return
	}
	prev := -1
	for x := 0; x < w; x++ {
		v := values[x*len(values)/w]
		if math.IsNaN(v) {
			prev = -1
			continue
		}
		row := int(math.Round((ymax - clamp(v, ymin, ymax)) / (ymax - ymin) * float64(h-1)))
		lo, hi := row, row
		if prev >= 0 {
			lo, hi = min(row, prev), max(row, prev)
		}
		for y := lo; y <= hi; y++ {
			putRGBA(buf[(y*w+x)*4:], line)
		}
		prev = row
	}
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
