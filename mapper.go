package chartgeom

// MapPoints projects a data point sequence onto canvas pixel coordinates.
// The result is length- and order-preserving: points are laid out left to
// right by slice position with uniform horizontal spacing, independent of
// each point's own X field.
//
// A single point has no defined spacing, so it is centered horizontally in
// the plot area. An empty slice maps to nil. Metrics with a zero-span Y
// axis fail with ErrDegenerateAxis; metrics from ComputeMetrics never do.
func MapPoints(points []DataPoint, m Metrics) ([]Point, error) {
	if len(points) == 0 {
		return nil, nil
	}
	if m.MaxY <= m.MinY {
		return nil, ErrDegenerateAxis
	}

	out := make([]Point, len(points))
	if len(points) == 1 {
		out[0] = Pt(m.PaddingX+m.ChartWidth/2, m.mapY(points[0].Y))
		return out, nil
	}

	spacing := m.ChartWidth / float64(len(points)-1)
	for i, p := range points {
		out[i] = Pt(m.PaddingX+float64(i)*spacing, m.mapY(p.Y))
	}
	return out, nil
}

// RangeSpan is the pixel projection of one RangePoint: a vertical band at X
// from Top (the YMax edge) down to Bottom (the YMin edge). Top <= Bottom in
// pixel space because the screen Y axis grows downward.
type RangeSpan struct {
	X      float64
	Top    float64
	Bottom float64
}

// MapRanges projects range points onto canvas pixel bands, with the same
// spacing, ordering and degenerate-axis rules as MapPoints.
func MapRanges(points []RangePoint, m Metrics) ([]RangeSpan, error) {
	if len(points) == 0 {
		return nil, nil
	}
	if m.MaxY <= m.MinY {
		return nil, ErrDegenerateAxis
	}

	out := make([]RangeSpan, len(points))
	if len(points) == 1 {
		out[0] = RangeSpan{
			X:      m.PaddingX + m.ChartWidth/2,
			Top:    m.mapY(points[0].YMax),
			Bottom: m.mapY(points[0].YMin),
		}
		return out, nil
	}

	spacing := m.ChartWidth / float64(len(points)-1)
	for i, p := range points {
		out[i] = RangeSpan{
			X:      m.PaddingX + float64(i)*spacing,
			Top:    m.mapY(p.YMax),
			Bottom: m.mapY(p.YMin),
		}
	}
	return out, nil
}

// StackSegment is the pixel extent of one stacked component: the band from
// Top down to Bottom at the owning point's X position.
type StackSegment struct {
	Top    float64
	Bottom float64
}

// MapStacked converts one stacked point's components into contiguous pixel
// segments, accumulating from the zero baseline upward in component order.
// Each segment's Bottom equals the previous segment's Top.
func MapStacked(p StackedPoint, m Metrics) ([]StackSegment, error) {
	if m.MaxY <= m.MinY {
		return nil, ErrDegenerateAxis
	}

	out := make([]StackSegment, len(p.Values))
	sum := 0.0
	for i, v := range p.Values {
		bottom := m.mapY(sum)
		sum += v
		out[i] = StackSegment{Top: m.mapY(sum), Bottom: bottom}
	}
	return out, nil
}

// MapValue projects a single data value onto the canvas Y coordinate using
// the same normalization as MapPoints. Gridline and marker rendering use
// this directly.
func MapValue(y float64, m Metrics) (float64, error) {
	if m.MaxY <= m.MinY {
		return 0, ErrDegenerateAxis
	}
	return m.mapY(y), nil
}

// mapY normalizes a data value into pixel space, inverting the axis: the
// screen Y axis grows downward while the data Y axis grows upward.
// Callers must have checked MaxY > MinY.
func (m Metrics) mapY(y float64) float64 {
	return m.ChartHeight - (y-m.MinY)/(m.MaxY-m.MinY)*m.ChartHeight
}
