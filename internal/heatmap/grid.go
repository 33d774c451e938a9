package heatmap

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sightline-labs/heatmap-overlay/internal/detection"
)

// Intensity is a row-major height×width grid of 8-bit density values, the
// normalized output of rasterization.
type Intensity struct {
	Width  int
	Height int

	// Pix holds cell values in row-major order: Pix[y*Width+x].
	Pix []uint8
}

// At returns the intensity at cell (x, y). Callers must keep coordinates in
// bounds; this is an internal accessor with no range check.
func (g *Intensity) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Rasterize accumulates detection centroids into a density grid and reduces it
// to 8-bit intensities.
//
// Each in-bounds detection increments the cell at (floor(y), floor(x)) by one;
// detections outside [0,width)×[0,height) are dropped silently. The grid is
// then smoothed with a Gaussian kernel of standard deviation sigma, clipped so
// no cell exceeds ceiling, and min-max normalized over the whole grid so the
// minimum maps to 0 and the maximum to 255, truncating to uint8.
//
// Parameters:
//   - dets: Detection centroids in pixel coordinates. May be empty.
//   - width, height: Grid dimensions, matching the output image.
//   - sigma: Gaussian standard deviation. Values ≤ 0 skip smoothing entirely
//     (an identity kernel).
//   - ceiling: Density cap applied after smoothing. Bounds the saturation
//     point so a single crowded cell cannot wash out the rest of the grid.
//
// A grid that is uniformly flat after smoothing (the empty-input case)
// normalizes to all zeros rather than dividing by zero.
func Rasterize(dets []detection.Detection, width, height int, sigma, ceiling float64) *Intensity {
	grid := mat.NewDense(height, width, nil)

	for _, d := range dets {
		if d.X >= 0 && d.X < float64(width) && d.Y >= 0 && d.Y < float64(height) {
			x, y := int(d.X), int(d.Y)
			grid.Set(y, x, grid.At(y, x)+1)
		}
	}

	gaussianSmooth(grid, sigma)

	// NewDense allocates a contiguous backing slice with stride == width, so
	// the raw data can be scanned and rewritten as a flat vector.
	data := grid.RawMatrix().Data
	for i, v := range data {
		if v > ceiling {
			data[i] = ceiling
		}
	}

	out := &Intensity{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}

	lo := floats.Min(data)
	hi := floats.Max(data)
	if hi == lo {
		// Flat grid: nothing to normalize, leave all cells at zero.
		return out
	}

	// Dividing by the span before scaling keeps the maximum at exactly 1.0,
	// so the hottest cell always truncates to 255.
	span := hi - lo
	for i, v := range data {
		out.Pix[i] = uint8((v - lo) / span * 255)
	}
	return out
}

// gaussianSmooth convolves the grid in place with a separable Gaussian kernel
// of standard deviation sigma, using edge-reflect (symmetric) boundary
// handling. The kernel radius is int(4*sigma + 0.5), wide enough that the
// truncated tails are negligible.
func gaussianSmooth(grid *mat.Dense, sigma float64) {
	if sigma <= 0 {
		return
	}

	kernel := gaussianKernel(sigma)
	rows, cols := grid.Dims()
	data := grid.RawMatrix().Data

	// Horizontal pass.
	line := make([]float64, cols)
	for y := 0; y < rows; y++ {
		row := data[y*cols : (y+1)*cols]
		convolveLine(row, line, kernel)
		copy(row, line)
	}

	// Vertical pass.
	col := make([]float64, rows)
	out := make([]float64, rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			col[y] = data[y*cols+x]
		}
		convolveLine(col, out, kernel)
		for y := 0; y < rows; y++ {
			data[y*cols+x] = out[y]
		}
	}
}

// gaussianKernel returns normalized 1-D Gaussian weights for offsets
// [-radius, radius] with radius = int(4*sigma + 0.5).
func gaussianKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)

	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// convolveLine correlates src with the kernel into dst, reflecting indices
// that fall outside the line. dst must have the same length as src.
func convolveLine(src, dst, kernel []float64) {
	n := len(src)
	radius := len(kernel) / 2

	for i := 0; i < n; i++ {
		sum := 0.0
		for k, w := range kernel {
			sum += w * src[reflectIndex(i+k-radius, n)]
		}
		dst[i] = sum
	}
}

// reflectIndex maps an out-of-range index into [0, n) by symmetric reflection
// about the line edges: for a line (a b c d), the virtual extension reads
// (d c b a | a b c d | d c b a).
func reflectIndex(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - 1 - i
		}
	}
	return i
}
