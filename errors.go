package chartgeom

import "errors"

// ErrDegenerateAxis is returned by the coordinate mappers when the metrics
// describe a zero-span Y axis (MaxY == MinY). Metrics produced by
// ComputeMetrics never have this property because the tick generator falls
// back to the [0, 1] range; the error surfaces only when callers construct
// Metrics by hand.
var ErrDegenerateAxis = errors.New("chartgeom: axis range has zero span")
