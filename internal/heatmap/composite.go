package heatmap

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// Overlay alpha-blends the heat layer onto the base image and returns a new,
// fully opaque image of the same dimensions.
//
// The blend is a standard "over" composite driven by the layer's alpha
// channel: per channel, out = layer×a + base×(1−a) with a = layerAlpha/255,
// truncated to 8 bits. Where the layer alpha is zero the base pixel passes
// through exactly. The base image is widened to four channels (fully opaque)
// for the blend and the result is flattened back to opaque, so the output
// carries no transparency.
//
// A dimension mismatch between base and layer is a caller contract violation
// and returns an error rather than silently cropping or stretching.
func Overlay(base image.Image, layer *image.NRGBA) (*image.NRGBA, error) {
	bb := base.Bounds()
	lb := layer.Bounds()
	if bb.Dx() != lb.Dx() || bb.Dy() != lb.Dy() {
		return nil, fmt.Errorf("layer dimensions %dx%d do not match base image %dx%d",
			lb.Dx(), lb.Dy(), bb.Dx(), bb.Dy())
	}

	// clone.AsRGBA normalizes any source image type to a flat 8-bit buffer
	// with origin (0,0).
	src := clone.AsRGBA(base)
	width, height := bb.Dx(), bb.Dy()

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			so := src.PixOffset(x, y)
			lo := layer.PixOffset(x, y)
			oo := out.PixOffset(x, y)

			a := float64(layer.Pix[lo+3]) / 255.0
			inv := 1 - a
			out.Pix[oo+0] = uint8(float64(layer.Pix[lo+0])*a + float64(src.Pix[so+0])*inv)
			out.Pix[oo+1] = uint8(float64(layer.Pix[lo+1])*a + float64(src.Pix[so+1])*inv)
			out.Pix[oo+2] = uint8(float64(layer.Pix[lo+2])*a + float64(src.Pix[so+2])*inv)
			out.Pix[oo+3] = 0xFF
		}
	}
	return out, nil
}
