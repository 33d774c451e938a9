// Package heatmap synthesizes a density overlay from detection centroids.
//
// The pipeline turns a list of point detections into a color-mapped heat layer
// blended onto a base image:
//
//  1. Rasterize: accumulate centroids into a floating-point grid, smooth with a
//     Gaussian kernel, clip to a density ceiling, and min-max normalize into an
//     8-bit intensity grid.
//  2. Color ramp: map each intensity value through a 256-entry RGBA lookup
//     table running blue → green → yellow → orange → red, transparent at zero.
//  3. Composite: alpha-blend the resulting RGBA layer over the base image.
//
// # Coordinate System
//
// Grids and images share the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward. A detection
// at (x, y) lands in grid cell (floor(x), floor(y)).
//
// # Boundary Handling
//
// Gaussian smoothing uses edge-reflect (symmetric) boundary handling: the grid
// is treated as mirrored about its edges, so cell values near borders are
// smoothed against their own reflection rather than against zeros. This choice
// is fixed; changing it would alter intensity values near image edges.
//
// # Concurrency
//
// Every grid, layer, and image buffer is freshly allocated per call, so
// concurrent renders do not share mutable state. The only shared structure is
// the memoized color ramp table, which is read-only after construction and
// safe for concurrent use.
package heatmap
