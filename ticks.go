package chartgeom

import "math"

// DefaultTickCount is the tick count used when a caller passes count <= 0.
const DefaultTickCount = 5

// tickEpsilon absorbs binary floating-point drift when walking step
// multiples up to the expanded maximum.
const tickEpsilon = 1e-6

// NiceTicks returns "nice number" axis tick values covering [min, max]:
// gridline values chosen from visually clean increments (1, 2 or 5 times a
// power of ten) rather than raw even divisions of the data range.
//
// The returned sequence is strictly increasing with uniform step; its first
// element is <= min and its last is >= max, because the bounds are expanded
// outward to multiples of the chosen step. The length varies with the data:
// count is a target, not a guarantee.
//
// If min >= max the range is degenerate and the fixed fallback [0, 1] is
// returned. Callers must not treat the fallback as a genuine tick set for
// display unless that is the intended visual.
func NiceTicks(min, max float64, count int) []float64 {
	if min >= max {
		Logger().Debug("chartgeom: degenerate tick range, using [0, 1] fallback",
			"min", min, "max", max)
		return []float64{0, 1}
	}
	if count <= 0 {
		count = DefaultTickCount
	}

	step := niceStep((max - min) / float64(count))
	niceMin := math.Floor(min/step) * step
	niceMax := math.Ceil(max/step) * step

	ticks := make([]float64, 0, int((niceMax-niceMin)/step)+1)
	for v := niceMin; v <= niceMax+tickEpsilon; v += step {
		ticks = append(ticks, roundTick(v))
	}
	return ticks
}

// niceStep rounds a raw step to the nearest of {1, 2, 5} * 10^k where
// k = floor(log10(rawStep)). Ties resolve to whichever candidate minimizes
// the absolute distance to the raw step.
func niceStep(raw float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	best := magnitude
	for _, m := range [...]float64{2, 5} {
		candidate := m * magnitude
		if math.Abs(candidate-raw) < math.Abs(best-raw) {
			best = candidate
		}
	}
	return best
}

// roundTick rounds to 6 decimal digits to suppress binary floating-point
// noise in emitted tick values.
func roundTick(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
