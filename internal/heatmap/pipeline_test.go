package heatmap

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/sightline-labs/heatmap-overlay/internal/detection"
)

func TestRender_NoDetections(t *testing.T) {
	base := fillImage(DefaultWidth, DefaultHeight, color.NRGBA{255, 255, 255, 255})

	_, err := Render(base, nil, DefaultOptions())
	if !errors.Is(err, ErrNoDetections) {
		t.Fatalf("got error %v, want ErrNoDetections", err)
	}

	_, err = Render(base, []detection.Detection{}, DefaultOptions())
	if !errors.Is(err, ErrNoDetections) {
		t.Fatalf("empty slice: got error %v, want ErrNoDetections", err)
	}
}

func TestRender_SingleDetectionEndToEnd(t *testing.T) {
	gray := color.NRGBA{128, 128, 128, 255}
	base := fillImage(DefaultWidth, DefaultHeight, gray)
	dets := []detection.Detection{{X: 354, Y: 240}}

	out, err := Render(base, dets, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if b := out.Bounds(); b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Fatalf("output bounds: got %dx%d, want %dx%d", b.Dx(), b.Dy(), DefaultWidth, DefaultHeight)
	}

	// The detection cell is the grid maximum, so it maps to the ramp's red
	// end and blends warm: red well above the base, blue well below.
	center := out.NRGBAAt(354, 240)
	if center == gray {
		t.Error("center pixel should differ from the base")
	}
	if center.R <= gray.R || center.B >= gray.B {
		t.Errorf("center pixel %+v should be warm-shifted from base %+v", center, gray)
	}

	// Far corners are outside the kernel's reach (radius 60 at sigma 15), so
	// their intensity is zero and the base shows through untouched.
	for _, p := range []image.Point{{0, 0}, {707, 0}, {0, 479}, {707, 479}} {
		if got := out.NRGBAAt(p.X, p.Y); got != gray {
			t.Errorf("corner %v: got %+v, want base %+v", p, got, gray)
		}
	}
}

func TestRender_ResizesToCanonicalSize(t *testing.T) {
	base := fillImage(1416, 960, color.NRGBA{50, 50, 50, 255})
	dets := []detection.Detection{{X: 100, Y: 100}}

	out, err := Render(base, dets, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Errorf("output bounds: got %dx%d, want %dx%d", b.Dx(), b.Dy(), DefaultWidth, DefaultHeight)
	}
}

func TestRender_DoesNotAliasInput(t *testing.T) {
	base := fillImage(DefaultWidth, DefaultHeight, color.NRGBA{10, 10, 10, 255})
	dets := []detection.Detection{{X: 354, Y: 240}}

	out, err := Render(base, dets, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out.Set(0, 0, color.NRGBA{255, 255, 255, 255})
	if base.NRGBAAt(0, 0) != (color.NRGBA{10, 10, 10, 255}) {
		t.Error("mutating the output must not affect the input image")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Sigma != 15 {
		t.Errorf("Sigma: got %v, want 15", opts.Sigma)
	}
	if opts.Cap != 100 {
		t.Errorf("Cap: got %v, want 100", opts.Cap)
	}
	if opts.Alpha != 0.45 {
		t.Errorf("Alpha: got %v, want 0.45", opts.Alpha)
	}
	if opts.Width != 708 || opts.Height != 480 {
		t.Errorf("size: got %dx%d, want 708x480", opts.Width, opts.Height)
	}
}
