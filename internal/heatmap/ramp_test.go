package heatmap

import (
	"image/color"
	"testing"
)

func TestBuildRamp_ZeroEntryTransparent(t *testing.T) {
	r := BuildRamp(0.45)

	if got := r.At(0); got != (color.NRGBA{}) {
		t.Errorf("entry 0: got %+v, want fully transparent black", got)
	}
}

func TestBuildRamp_ConstantAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{"default opacity", 0.45, 114}, // int(255*0.45), truncated
		{"opaque", 1.0, 255},
		{"transparent", 0.0, 0},
		{"half", 0.5, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildRamp(tt.alpha)
			for i := 1; i < 256; i++ {
				if got := r.At(uint8(i)).A; got != tt.want {
					t.Fatalf("entry %d alpha: got %d, want %d", i, got, tt.want)
				}
			}
		})
	}
}

func TestBuildRamp_AnchorsAtBreakpoints(t *testing.T) {
	r := BuildRamp(0.45)
	const a = 114

	tests := []struct {
		name string
		idx  uint8
		want color.NRGBA
	}{
		{"green at first breakpoint", 25, color.NRGBA{0, 255, 0, a}},
		{"yellow at second breakpoint", 63, color.NRGBA{255, 255, 0, a}},
		{"orange at third breakpoint", 127, color.NRGBA{255, 165, 0, a}},
		{"red at fourth breakpoint", 178, color.NRGBA{255, 0, 0, a}},
		{"red at top", 255, color.NRGBA{255, 0, 0, a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.At(tt.idx); got != tt.want {
				t.Errorf("entry %d: got %+v, want %+v", tt.idx, got, tt.want)
			}
		})
	}
}

func TestBuildRamp_FirstSegmentInterpolation(t *testing.T) {
	r := BuildRamp(0.45)

	// Entry 1 is one step from blue toward green: ratio 1/25.
	got := r.At(1)
	ratio := 1.0 / 25.0
	want := color.NRGBA{R: 0, G: uint8(255.0 * ratio), B: uint8(255.0 * 24.0 * ratio), A: 114}
	if got != want {
		t.Errorf("entry 1: got %+v, want %+v", got, want)
	}

	// Chroma moves monotonically across the blue→green segment.
	prev := r.At(1)
	for i := uint8(2); i <= 25; i++ {
		c := r.At(i)
		if c.G < prev.G || c.B > prev.B {
			t.Fatalf("entry %d: segment not monotonic (%+v after %+v)", i, c, prev)
		}
		prev = c
	}
}

func TestBuildRamp_ConstantRedTail(t *testing.T) {
	r := BuildRamp(0.45)
	want := color.NRGBA{255, 0, 0, 114}

	for i := 179; i < 256; i++ {
		if got := r.At(uint8(i)); got != want {
			t.Fatalf("entry %d: got %+v, want constant red %+v", i, got, want)
		}
	}
}

func TestRampFor_Memoizes(t *testing.T) {
	a := RampFor(0.45)
	b := RampFor(0.45)
	if a != b {
		t.Error("RampFor should return the same table for the same alpha")
	}

	c := RampFor(0.8)
	if a == c {
		t.Error("RampFor should build distinct tables for distinct alphas")
	}
	if c.At(200).A != uint8(255*0.8) {
		t.Errorf("second table alpha: got %d, want %d", c.At(200).A, uint8(255*0.8))
	}
}

func TestRampApply(t *testing.T) {
	r := BuildRamp(0.45)
	grid := &Intensity{
		Width:  2,
		Height: 2,
		Pix:    []uint8{0, 25, 178, 255},
	}

	layer := r.Apply(grid)

	if b := layer.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("layer bounds: got %dx%d, want 2x2", b.Dx(), b.Dy())
	}

	if got := layer.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("zero-intensity pixel: got %+v, want transparent", got)
	}
	if got := layer.NRGBAAt(1, 0); got != (color.NRGBA{0, 255, 0, 114}) {
		t.Errorf("intensity-25 pixel: got %+v, want green", got)
	}
	if got := layer.NRGBAAt(0, 1); got != (color.NRGBA{255, 0, 0, 114}) {
		t.Errorf("intensity-178 pixel: got %+v, want red", got)
	}
	if got := layer.NRGBAAt(1, 1); got != (color.NRGBA{255, 0, 0, 114}) {
		t.Errorf("intensity-255 pixel: got %+v, want red", got)
	}
}
