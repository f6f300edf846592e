package chartgeom

import "time"

// CalendarGrid lays out one month as a week-per-row grid with the week
// starting on Sunday.
type CalendarGrid struct {
	// FirstWeekdayOffset is the column (0 = Sunday .. 6 = Saturday) of the
	// month's first day.
	FirstWeekdayOffset int
	// TotalDays is the number of days in the month.
	TotalDays int
	// Rows is the minimum number of grid rows needed to lay out the month
	// starting from the correct weekday column.
	Rows int
}

// ComputeCalendarGrid computes the grid layout for the given month.
// Month length and leap years come from the time package's date
// arithmetic; time.Weekday already counts from Sunday, matching the grid
// convention.
func ComputeCalendarGrid(year int, month time.Month) CalendarGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	days := first.AddDate(0, 1, -1).Day()
	return CalendarGrid{
		FirstWeekdayOffset: offset,
		TotalDays:          days,
		Rows:               (offset + days + 6) / 7,
	}
}
