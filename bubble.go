package chartgeom

// BubbleSize interpolates a visual size for a bubble chart value:
// minSize + (maxSize-minSize) * value/maxValue.
//
// A non-positive maxValue has no usable scale and returns minSize. The
// value is not clamped: callers passing value > maxValue get sizes
// exceeding maxSize.
func BubbleSize(value, maxValue, minSize, maxSize float64) float64 {
	if maxValue <= 0 {
		return minSize
	}
	return minSize + (maxSize-minSize)*(value/maxValue)
}
