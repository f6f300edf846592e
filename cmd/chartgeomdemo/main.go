// Command chartgeomdemo exercises the chartgeom layout computations on
// sample datasets and prints the resulting drawing primitives.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/chartgeom"
)

func main() {
	var (
		width   = flag.Float64("width", 400, "canvas width")
		height  = flag.Float64("height", 300, "canvas height")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		chartgeom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	size := chartgeom.Sz(*width, *height)

	printLineChart(size)
	printBarChart(size)
	printPieChart(size)
	printCalendar()
	printBubbles()
}

func printLineChart(size chartgeom.Size) {
	points := []chartgeom.DataPoint{
		{X: 0, Y: 10, Label: "Mon"},
		{X: 1, Y: 25, Label: "Tue"},
		{X: 2, Y: 40, Label: "Wed"},
		{X: 3, Y: 20, Label: "Thu"},
		{X: 4, Y: 35, Label: "Fri"},
		{X: 5, Y: 55, Label: "Sat"},
		{X: 6, Y: 45, Label: "Sun"},
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Y
	}

	m := chartgeom.ComputeMetrics(size, values, chartgeom.KindLine)
	fmt.Printf("line chart: y axis [%g, %g], ticks %v\n", m.MinY, m.MaxY, m.YTicks)

	mapped, err := chartgeom.MapPoints(points, m)
	if err != nil {
		log.Fatalf("map points: %v", err)
	}
	for i, pt := range mapped {
		fmt.Printf("  %-3s (%6.1f, %6.1f)\n", points[i].Label, pt.X, pt.Y)
	}
}

func printBarChart(size chartgeom.Size) {
	values := []float64{10, 25, 40, 20, 35, 55, 45}
	m := chartgeom.ComputeMetrics(size, values, chartgeom.KindBar)
	fmt.Printf("bar chart: zero baseline, y axis [%g, %g], ticks %v\n",
		m.MinY, m.MaxY, m.YTicks)
}

func printPieChart(size chartgeom.Size) {
	points := []chartgeom.DataPoint{
		{Y: 35, Label: "go"},
		{Y: 25, Label: "rust"},
		{Y: 40, Label: "other"},
	}
	pm := chartgeom.ComputePieMetrics(size)
	fmt.Printf("pie chart: center (%g, %g), radius %g\n",
		pm.Center.X, pm.Center.Y, pm.Radius)

	for i, s := range chartgeom.ComputePieSlices(points) {
		mid := s.StartAngle + s.SweepAngle/2
		label := chartgeom.LabelPosition(pm.Center, pm.Radius, 0.7, mid)
		fmt.Printf("  %-6s start %6.1f sweep %6.1f label at (%6.1f, %6.1f)\n",
			points[i].Label, s.StartAngle, s.SweepAngle, label.X, label.Y)
	}
}

func printCalendar() {
	now := time.Now()
	g := chartgeom.ComputeCalendarGrid(now.Year(), now.Month())
	fmt.Printf("calendar %s %d: first column %d, %d days, %d rows\n",
		now.Month(), now.Year(), g.FirstWeekdayOffset, g.TotalDays, g.Rows)
}

func printBubbles() {
	fmt.Println("bubble sizes (max value 100, size 10..30):")
	for _, v := range []float64{0, 25, 50, 100} {
		fmt.Printf("  value %5.1f -> size %5.1f\n", v, chartgeom.BubbleSize(v, 100, 10, 30))
	}
}
