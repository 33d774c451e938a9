package heatmap

import (
	"image"
	"image/color"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp anchor colors, cold to warm. Parsed once at init; a bad literal here is
// a programming error, so parsing panics via MustParseHex.
var rampAnchors = [5]color.NRGBA{
	anchorColor("#0000FF"), // blue
	anchorColor("#00FF00"), // green
	anchorColor("#FFFF00"), // yellow
	anchorColor("#FFA500"), // orange
	anchorColor("#FF0000"), // red
}

// Breakpoints between anchor segments, as indices into the 0-255 intensity
// range: floor(255 × {0.10, 0.25, 0.50, 0.70}).
var rampThresholds = [4]int{25, 63, 127, 178}

func anchorColor(hex string) color.NRGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b}
}

// Ramp is a 256-entry lookup table mapping 8-bit intensity to an RGBA color.
//
// Entry 0 is fully transparent. Entries 1-255 interpolate linearly through the
// anchor colors blue → green → yellow → orange → red and carry a constant
// alpha. A Ramp is immutable after construction and safe for concurrent use.
type Ramp struct {
	entries [256]color.NRGBA
}

// At returns the color for intensity i.
func (r *Ramp) At(i uint8) color.NRGBA {
	return r.entries[i]
}

// BuildRamp constructs the lookup table for the given overlay opacity.
//
// alpha is the overlay opacity in [0, 1]; entries 1-255 carry a constant alpha
// of int(255 × alpha), while entry 0 stays fully transparent regardless.
// Interpolated channel values are truncated, not rounded, when narrowed to
// 8 bits, so the table reproduces the reference ramp exactly.
func BuildRamp(alpha float64) *Ramp {
	a := uint8(255 * alpha)

	r := &Ramp{}
	r.entries[0] = color.NRGBA{} // fully transparent, chroma irrelevant

	for i := 1; i < 256; i++ {
		seg := 0
		for seg < len(rampThresholds) && i > rampThresholds[seg] {
			seg++
		}
		if seg == len(rampThresholds) {
			// Beyond the last breakpoint the ramp is constant red.
			c := rampAnchors[len(rampAnchors)-1]
			c.A = a
			r.entries[i] = c
			continue
		}

		lo := 0
		if seg > 0 {
			lo = rampThresholds[seg-1]
		}
		t := float64(i-lo) / float64(rampThresholds[seg]-lo)
		c := lerpNRGBA(rampAnchors[seg], rampAnchors[seg+1], t)
		c.A = a
		r.entries[i] = c
	}
	return r
}

// lerpNRGBA interpolates each chroma channel linearly and truncates to uint8.
func lerpNRGBA(c1, c2 color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8((1-t)*float64(c1.R) + t*float64(c2.R)),
		G: uint8((1-t)*float64(c1.G) + t*float64(c2.G)),
		B: uint8((1-t)*float64(c1.B) + t*float64(c2.B)),
	}
}

// Apply maps every cell of the intensity grid through the ramp, producing the
// RGBA heat layer with the grid's dimensions.
func (r *Ramp) Apply(grid *Intensity) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			c := r.entries[grid.Pix[y*grid.Width+x]]
			off := layer.PixOffset(x, y)
			layer.Pix[off+0] = c.R
			layer.Pix[off+1] = c.G
			layer.Pix[off+2] = c.B
			layer.Pix[off+3] = c.A
		}
	}
	return layer
}

// rampCache memoizes built ramps by their 8-bit alpha so concurrent requests
// with the same opacity share one read-only table. RLock for the fast path,
// a write lock only on miss.
var rampCache = struct {
	mu    sync.RWMutex
	ramps map[uint8]*Ramp
}{ramps: make(map[uint8]*Ramp)}

// RampFor returns the memoized ramp for the given opacity, building it on
// first use. Safe for concurrent callers.
func RampFor(alpha float64) *Ramp {
	key := uint8(255 * alpha)

	rampCache.mu.RLock()
	r, ok := rampCache.ramps[key]
	rampCache.mu.RUnlock()
	if ok {
		return r
	}

	r = BuildRamp(alpha)

	rampCache.mu.Lock()
	if cached, ok := rampCache.ramps[key]; ok {
		r = cached
	} else {
		rampCache.ramps[key] = r
	}
	rampCache.mu.Unlock()

	return r
}
