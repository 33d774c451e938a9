package heatmap

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"github.com/sightline-labs/heatmap-overlay/internal/detection"
)

// ErrNoDetections reports that a render was requested with an empty detection
// list. It is a distinct, caller-mappable condition rather than a processing
// failure: a web frontend may answer 422 while a batch tool just logs it.
var ErrNoDetections = errors.New("no detections to render")

// Default pipeline parameters.
const (
	DefaultSigma  = 15.0     // Gaussian smoothing standard deviation
	DefaultCap    = 100.0    // density ceiling applied after smoothing
	DefaultAlpha  = 0.45     // overlay opacity for non-zero intensities
	DefaultWidth  = 708      // canonical output width in pixels
	DefaultHeight = 480      // canonical output height in pixels
	DefaultClass  = "person" // target detection class label
)

// Options holds the tunable parameters of the heatmap pipeline. The zero
// value is not useful; start from DefaultOptions.
type Options struct {
	Sigma  float64 // Gaussian smoothing width (DefaultSigma)
	Cap    float64 // density ceiling (DefaultCap)
	Alpha  float64 // overlay opacity in [0, 1] (DefaultAlpha)
	Width  int     // output width in pixels (DefaultWidth)
	Height int     // output height in pixels (DefaultHeight)
}

// DefaultOptions returns the documented default pipeline parameters.
func DefaultOptions() Options {
	return Options{
		Sigma:  DefaultSigma,
		Cap:    DefaultCap,
		Alpha:  DefaultAlpha,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Render produces the heatmap overlay for a base image and a set of
// detection centroids.
//
// The base image is resized to the canonical opts.Width × opts.Height
// (Lanczos resampling) unless it already has those dimensions, then the
// detections are rasterized, color-mapped, and blended on top of it. The
// returned image is freshly allocated and never aliases the input.
//
// An empty detection list returns ErrNoDetections. Rasterization itself
// tolerates an empty list (yielding an all-transparent layer); the sentinel
// exists so callers can distinguish "nothing to show" from a failure without
// inspecting pixels.
func Render(base image.Image, dets []detection.Detection, opts Options) (*image.NRGBA, error) {
	if len(dets) == 0 {
		return nil, ErrNoDetections
	}

	resized := base
	if b := base.Bounds(); b.Dx() != opts.Width || b.Dy() != opts.Height {
		resized = imaging.Resize(base, opts.Width, opts.Height, imaging.Lanczos)
	}

	grid := Rasterize(dets, opts.Width, opts.Height, opts.Sigma, opts.Cap)
	layer := RampFor(opts.Alpha).Apply(grid)

	return Overlay(resized, layer)
}
