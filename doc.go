// Package chartgeom computes chart geometry and layout.
//
// # Overview
//
// chartgeom is a pure computation layer for chart rendering: it turns
// abstract chart data (ordered points, value ranges, calendar months) into
// concrete drawing primitives (pixel coordinates, slice angles, tick values,
// bubble sizes). It issues no draw calls itself; a presentation layer calls
// into chartgeom with plain data and renders the returned primitives.
//
// # Quick Start
//
//	import "github.com/gogpu/chartgeom"
//
//	size := chartgeom.Sz(400, 300)
//	values := []float64{10, 25, 40, 20, 35, 55, 45}
//
//	// Derive the plot area and Y axis.
//	m := chartgeom.ComputeMetrics(size, values, chartgeom.KindLine)
//	_ = m.YTicks // gridline values, first == m.MinY, last == m.MaxY
//
//	// Project data points into pixel space.
//	pts, err := chartgeom.MapPoints(points, m)
//
// # Architecture
//
// Every computation is grouped by chart family in its own file:
//
//   - ticks.go: "nice number" axis tick generation
//   - metrics.go: plot area padding and Y-axis bounds for line/bar/range charts
//   - mapper.go: data-to-pixel projection
//   - pie.go: slice angles and label placement
//   - calendar.go: month grid layout
//   - bubble.go: value-to-size interpolation
//
// All functions are stateless and side-effect-free; every call is independent
// and safe for concurrent use from any number of goroutines. Returned slices
// are owned by the caller and valid only for the draw pass that requested
// them.
package chartgeom
