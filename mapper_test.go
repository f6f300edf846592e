package chartgeom

import (
	"errors"
	"math"
	"testing"
)

// testMetrics is a hand-built axis used by the mapper tests: 400x300 canvas
// with default paddings and a 0..100 Y range.
func testMetrics() Metrics {
	return Metrics{
		PaddingX:    60,
		PaddingY:    40,
		ChartWidth:  340,
		ChartHeight: 260,
		MinY:        0,
		MaxY:        100,
		YTicks:      []float64{0, 20, 40, 60, 80, 100},
	}
}

func TestMapPoints_Projection(t *testing.T) {
	points := []DataPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 50},
		{X: 2, Y: 100},
	}
	got, err := MapPoints(points, testMetrics())
	if err != nil {
		t.Fatalf("MapPoints() error = %v", err)
	}

	// Spacing 340/2 = 170; Y inverts: data 0 lands at the chart bottom.
	want := []Point{
		Pt(60, 260),
		Pt(230, 130),
		Pt(400, 0),
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Approx(want[i], 1e-9) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMapPoints_OrderIndependentOfXField(t *testing.T) {
	// Layout follows slice position, not the point's own X value.
	points := []DataPoint{
		{X: 99, Y: 10},
		{X: -3, Y: 20},
	}
	got, err := MapPoints(points, testMetrics())
	if err != nil {
		t.Fatalf("MapPoints() error = %v", err)
	}
	if got[0].X != 60 || got[1].X != 400 {
		t.Errorf("x positions = (%v, %v), want (60, 400)", got[0].X, got[1].X)
	}
}

func TestMapPoints_SinglePointCentered(t *testing.T) {
	got, err := MapPoints([]DataPoint{{Y: 50}}, testMetrics())
	if err != nil {
		t.Fatalf("MapPoints() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].Approx(Pt(230, 130), 1e-9) {
		t.Errorf("single point = %v, want (230, 130)", got[0])
	}
}

func TestMapPoints_Empty(t *testing.T) {
	got, err := MapPoints(nil, testMetrics())
	if err != nil {
		t.Fatalf("MapPoints() error = %v", err)
	}
	if got != nil {
		t.Errorf("MapPoints(nil) = %v, want nil", got)
	}
}

func TestMapPoints_DegenerateAxis(t *testing.T) {
	m := testMetrics()
	m.MinY, m.MaxY = 5, 5
	_, err := MapPoints([]DataPoint{{Y: 1}, {Y: 2}}, m)
	if !errors.Is(err, ErrDegenerateAxis) {
		t.Errorf("error = %v, want ErrDegenerateAxis", err)
	}
}

func TestMapValue(t *testing.T) {
	m := testMetrics()
	tests := []struct {
		y      float64
		expect float64
	}{
		{0, 260},
		{50, 130},
		{100, 0},
		{25, 195},
		{-50, 390}, // below axis minimum extends past the chart bottom
	}
	for _, tt := range tests {
		got, err := MapValue(tt.y, m)
		if err != nil {
			t.Fatalf("MapValue(%v) error = %v", tt.y, err)
		}
		if math.Abs(got-tt.expect) > 1e-9 {
			t.Errorf("MapValue(%v) = %v, want %v", tt.y, got, tt.expect)
		}
	}

	m.MinY, m.MaxY = 1, 1
	if _, err := MapValue(5, m); !errors.Is(err, ErrDegenerateAxis) {
		t.Errorf("degenerate axis error = %v, want ErrDegenerateAxis", err)
	}
}

func TestMapRanges_Bands(t *testing.T) {
	points := []RangePoint{
		{X: 0, YMin: 0, YMax: 50},
		{X: 1, YMin: 50, YMax: 100},
	}
	got, err := MapRanges(points, testMetrics())
	if err != nil {
		t.Fatalf("MapRanges() error = %v", err)
	}

	want := []RangeSpan{
		{X: 60, Top: 130, Bottom: 260},
		{X: 400, Top: 0, Bottom: 130},
	}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 ||
			math.Abs(got[i].Top-want[i].Top) > 1e-9 ||
			math.Abs(got[i].Bottom-want[i].Bottom) > 1e-9 {
			t.Errorf("span %d = %+v, want %+v", i, got[i], want[i])
		}
		if got[i].Top > got[i].Bottom {
			t.Errorf("span %d: Top %v below Bottom %v in pixel space",
				i, got[i].Top, got[i].Bottom)
		}
	}
}

func TestMapRanges_SingleAndEmpty(t *testing.T) {
	got, err := MapRanges([]RangePoint{{YMin: 0, YMax: 100}}, testMetrics())
	if err != nil {
		t.Fatalf("MapRanges() error = %v", err)
	}
	if got[0].X != 230 {
		t.Errorf("single band X = %v, want centered at 230", got[0].X)
	}

	got, err = MapRanges(nil, testMetrics())
	if err != nil || got != nil {
		t.Errorf("MapRanges(nil) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMapStacked_ContiguousSegments(t *testing.T) {
	p := StackedPoint{Values: []float64{25, 25, 50}}
	got, err := MapStacked(p, testMetrics())
	if err != nil {
		t.Fatalf("MapStacked() error = %v", err)
	}

	want := []StackSegment{
		{Top: 195, Bottom: 260},
		{Top: 130, Bottom: 195},
		{Top: 0, Bottom: 130},
	}
	for i := range want {
		if math.Abs(got[i].Top-want[i].Top) > 1e-9 ||
			math.Abs(got[i].Bottom-want[i].Bottom) > 1e-9 {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if math.Abs(got[i].Bottom-got[i-1].Top) > 1e-9 {
			t.Errorf("segment %d not contiguous: Bottom %v, previous Top %v",
				i, got[i].Bottom, got[i-1].Top)
		}
	}
}

func TestMapStacked_DegenerateAxis(t *testing.T) {
	m := testMetrics()
	m.MinY, m.MaxY = 0, 0
	_, err := MapStacked(StackedPoint{Values: []float64{1}}, m)
	if !errors.Is(err, ErrDegenerateAxis) {
		t.Errorf("error = %v, want ErrDegenerateAxis", err)
	}
}

// Metrics produced by ComputeMetrics always map without error: the tick
// fallback guarantees a non-degenerate axis even for hostile input.
func TestMapPoints_ComputedMetricsNeverDegenerate(t *testing.T) {
	series := [][]float64{
		{5, 5, 5},
		{0},
		nil,
	}
	for _, values := range series {
		m := ComputeMetrics(Sz(400, 300), values, KindLine)
		points := make([]DataPoint, len(values))
		for i, v := range values {
			points[i] = DataPoint{X: float64(i), Y: v}
		}
		if _, err := MapPoints(points, m); err != nil {
			t.Errorf("MapPoints with computed metrics for %v: %v", values, err)
		}
	}
}
