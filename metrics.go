package chartgeom

// Default plot paddings, reserved for axis labels. These are constants of
// the layout contract, not computed from content.
const (
	DefaultPaddingX = 60
	DefaultPaddingY = 40
)

// smallMinFraction is the snap-to-zero threshold: a non-negative data
// minimum below this fraction of the data maximum is rounded down to the
// axis origin. Part of the observable contract; do not tune.
const smallMinFraction = 0.1

// Metrics describes the usable plot area and the Y axis derived for one
// draw pass. MinY and MaxY always equal the first and last tick, so
// gridlines land exactly on the axis bounds.
type Metrics struct {
	PaddingX    float64
	PaddingY    float64
	ChartWidth  float64
	ChartHeight float64
	MinY        float64
	MaxY        float64
	YTicks      []float64
}

// MetricsOption configures metrics computation. The defaults (tick count 5,
// paddings 60x40) are part of the layout contract; options exist for
// callers that draw their own axis labels.
type MetricsOption func(*metricsOptions)

type metricsOptions struct {
	tickCount int
	paddingX  float64
	paddingY  float64
}

func defaultMetricsOptions() metricsOptions {
	return metricsOptions{
		tickCount: DefaultTickCount,
		paddingX:  DefaultPaddingX,
		paddingY:  DefaultPaddingY,
	}
}

// WithTickCount sets the target Y-axis tick count. Values <= 0 keep the
// default.
func WithTickCount(n int) MetricsOption {
	return func(o *metricsOptions) {
		if n > 0 {
			o.tickCount = n
		}
	}
}

// WithPadding overrides the plot paddings reserved for axis labels.
func WithPadding(x, y float64) MetricsOption {
	return func(o *metricsOptions) {
		o.paddingX = x
		o.paddingY = y
	}
}

// ComputeMetrics derives plot-area metrics and the Y axis for a value
// series. Call it once per draw pass, then feed the result to MapPoints per
// point.
//
// An empty values slice does not fail; it degrades to the default unit
// range [0, 1]. Bar-family kinds force the Y axis to a zero baseline. For
// all other kinds a small non-negative minimum (below one tenth of the
// maximum) snaps to zero so the axis starts at the origin; negative or
// substantially positive minimums are preserved to avoid misleading
// compression.
func ComputeMetrics(size Size, values []float64, kind Kind, opts ...MetricsOption) Metrics {
	o := defaultMetricsOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dataMin, dataMax := valueBounds(values)

	minY := dataMin
	if kind.zeroBaseline() {
		minY = 0
	} else if dataMin >= 0 && dataMin < smallMinFraction*dataMax {
		minY = 0
	}

	return buildMetrics(size, o, NiceTicks(minY, dataMax, o.tickCount))
}

// ComputeRangeMetrics derives metrics for a range chart. The data bounds
// come from the union of every YMin and YMax across the points, and no zero
// baseline is ever forced: a band chart floating well above zero keeps its
// true extent.
func ComputeRangeMetrics(size Size, points []RangePoint, opts ...MetricsOption) Metrics {
	o := defaultMetricsOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dataMin, dataMax := 0.0, 1.0
	if len(points) > 0 {
		dataMin, dataMax = points[0].YMin, points[0].YMax
		for _, p := range points {
			if p.YMin < dataMin {
				dataMin = p.YMin
			}
			if p.YMax > dataMax {
				dataMax = p.YMax
			}
		}
	} else {
		Logger().Debug("chartgeom: empty range series, using unit range")
	}

	return buildMetrics(size, o, NiceTicks(dataMin, dataMax, o.tickCount))
}

// ComputeStackedMetrics derives metrics for a stacked bar chart. Each
// point's stacked components are summed, and the sums go through the
// bar-family policy, so the axis always anchors at zero.
func ComputeStackedMetrics(size Size, points []StackedPoint, opts ...MetricsOption) Metrics {
	sums := make([]float64, len(points))
	for i, p := range points {
		for _, v := range p.Values {
			sums[i] += v
		}
	}
	return ComputeMetrics(size, sums, KindStackedBar, opts...)
}

// valueBounds returns (min, max) of the series, degrading to the default
// unit range (0, 1) when the series is empty.
func valueBounds(values []float64) (float64, float64) {
	if len(values) == 0 {
		Logger().Debug("chartgeom: empty value series, using unit range")
		return 0, 1
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// buildMetrics assembles Metrics from the generated ticks. The tick bounds,
// not the data bounds, become the final axis extent so gridlines land
// exactly at MinY and MaxY.
func buildMetrics(size Size, o metricsOptions, ticks []float64) Metrics {
	return Metrics{
		PaddingX:    o.paddingX,
		PaddingY:    o.paddingY,
		ChartWidth:  size.Width - o.paddingX,
		ChartHeight: size.Height - o.paddingY,
		MinY:        ticks[0],
		MaxY:        ticks[len(ticks)-1],
		YTicks:      ticks,
	}
}
