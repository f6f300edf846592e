package chartgeom

// DataPoint is one value on a primary axis. Points are supplied per draw
// call and remain owned by the caller; chartgeom never retains them.
type DataPoint struct {
	X     float64
	Y     float64
	Label string
}

// RangePoint is a value interval (for example a min/max band) instead of a
// single Y value.
type RangePoint struct {
	X     float64
	YMin  float64
	YMax  float64
	Label string
}

// StackedPoint carries multiple stacked components per X position.
// Component order is significant and must be shared across all points in a
// series.
type StackedPoint struct {
	X      float64
	Values []float64
	Label  string
}

// Kind selects layout policy variations per chart family. Only the bar
// kinds affect the zero-baseline policy of ComputeMetrics; the others exist
// so callers can state intent explicitly instead of passing a null
// discriminator.
type Kind int

const (
	// KindDefault applies no kind-specific layout policy.
	KindDefault Kind = iota
	KindLine
	KindBar
	KindStackedBar
	KindScatter
	KindRange
	KindPie
	KindCalendar
)

// String returns the kind name for logging and error messages.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	case KindStackedBar:
		return "stacked-bar"
	case KindScatter:
		return "scatter"
	case KindRange:
		return "range"
	case KindPie:
		return "pie"
	case KindCalendar:
		return "calendar"
	default:
		return "unknown"
	}
}

// zeroBaseline reports whether this kind anchors the Y axis at zero.
// Bars are drawn from a baseline, so a non-zero axis origin would
// misrepresent their heights.
func (k Kind) zeroBaseline() bool {
	return k == KindBar || k == KindStackedBar
}
