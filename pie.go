package chartgeom

import "math"

// DefaultPiePadding is the margin between the pie circle and the canvas
// edge when no option overrides it.
const DefaultPiePadding = 32

// PieMetrics places the pie circle on the canvas.
type PieMetrics struct {
	Center Point
	Radius float64
}

// PieSlice is the angular extent of one slice. Angles are in degrees;
// 0 points right, angles grow clockwise in screen space, and the first
// slice of a dataset starts at -90 (12 o'clock).
type PieSlice struct {
	StartAngle float64
	SweepAngle float64
	ValueRatio float64
}

// PieOption configures pie metrics computation.
type PieOption func(*pieOptions)

type pieOptions struct {
	padding float64
}

// WithPiePadding overrides the margin between the circle and the canvas
// edge.
func WithPiePadding(p float64) PieOption {
	return func(o *pieOptions) {
		o.padding = p
	}
}

// ComputePieMetrics centers the pie on the canvas midpoint with a radius of
// half the shorter canvas dimension minus the padding, so the circle fits
// regardless of aspect ratio.
func ComputePieMetrics(size Size, opts ...PieOption) PieMetrics {
	o := pieOptions{padding: DefaultPiePadding}
	for _, opt := range opts {
		opt(&o)
	}
	return PieMetrics{
		Center: Pt(size.Width/2, size.Height/2),
		Radius: size.Min()/2 - o.padding,
	}
}

// ComputePieSlices computes per-slice start and sweep angles from the point
// values. Slices appear in input order (no value-based sorting), are
// contiguous and clockwise from 12 o'clock, and their sweeps sum to 360.
//
// A non-positive total returns nil: nothing to render, not an error.
func ComputePieSlices(points []DataPoint) []PieSlice {
	total := 0.0
	for _, p := range points {
		total += p.Y
	}
	if total <= 0 {
		Logger().Debug("chartgeom: non-positive pie total, no slices", "total", total)
		return nil
	}

	slices := make([]PieSlice, len(points))
	start := -90.0
	for i, p := range points {
		ratio := p.Y / total
		sweep := ratio * 360
		slices[i] = PieSlice{
			StartAngle: start,
			SweepAngle: sweep,
			ValueRatio: ratio,
		}
		start += sweep
	}
	return slices
}

// LabelPosition places a point along the given angle at radius*radiusFactor
// from the center. A factor below 1 lands inside the circle, above 1
// outside; pie labels typically use the slice's mid-angle.
func LabelPosition(center Point, radius, radiusFactor, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	return Pt(
		center.X+radius*radiusFactor*math.Cos(rad),
		center.Y+radius*radiusFactor*math.Sin(rad),
	)
}
