package Gantt

import "time"

// MondayOfWeek returns the Monday that starts the given date's week. A Sunday
// counts as day 7 of the preceding Monday-started week, so it maps to the
// Monday six days earlier.
func MondayOfWeek(date time.Time) time.Time {
	day := int(date.Weekday())
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	return date.AddDate(0, 0, diff)
}

// ResolveWindowStart picks the window start for a selected date. In week mode
// the start snaps to the Monday of that week; otherwise the selected date is
// used as-is.
func ResolveWindowStart(selected time.Time, weekMode bool) time.Time {
	if weekMode {
		return MondayOfWeek(selected)
	}
	return selected
}
