package Gantt

import (
	"fmt"
	"math"
	"time"

	"Planify/Models"

	"gorm.io/datatypes"
)

// Defaults applied when a booking carries no usable value of its own.
const (
	DefaultColor    = "rgb(0, 136, 206)"
	DefaultProgress = 0.4
)

// Window is the visible date range of the board: a start instant plus a day
// count (>= 1). The window end is inclusive through the whole last day.
type Window struct {
	StartDate time.Time
	DayCount  int
}

// End returns the last covered instant of the window.
func (w Window) End() time.Time {
	return endOfDay(w.StartDate.AddDate(0, 0, w.DayCount-1))
}

// GanttRow is the row shape the rendering widget consumes. Rows are recomputed
// on every clip and never persisted.
type GanttRow struct {
	ID           string         `json:"id"`
	Text         string         `json:"text"`
	StartDate    time.Time      `json:"start_date"`
	Duration     int            `json:"duration"`
	Progress     float64        `json:"progress"`
	Type         string         `json:"type"`
	Dependencies datatypes.JSON `json:"dependencies"`
	Color        string         `json:"color"`
}

// TaskLabel rebuilds a booking's display text from its stable fields.
func TaskLabel(name, startTime, endTime string) string {
	return fmt.Sprintf("%s (%s - %s)", name, startTime, endTime)
}

// ClipToWindow projects bookings onto the visible window. Bookings entirely
// outside the window are omitted; the rest are clamped to the window edges and
// occupy at least one displayed day. Output order follows input order.
func ClipToWindow(bookings []Models.Booking, window Window) []GanttRow {
	winStart := window.StartDate
	winEnd := window.End()

	rows := make([]GanttRow, 0, len(bookings))
	for _, booking := range bookings {
		visibleStart := booking.Debut
		if visibleStart.Before(winStart) {
			visibleStart = winStart
		}
		visibleEnd := booking.Fin
		if visibleEnd.After(winEnd) {
			visibleEnd = winEnd
		}

		if visibleStart.After(winEnd) || visibleEnd.Before(winStart) {
			continue
		}

		duration := int(math.Ceil(float64(visibleEnd.Sub(visibleStart)+time.Nanosecond) / float64(24*time.Hour)))
		if duration < 1 {
			duration = 1
		}

		// A stored progress of exactly 0 is indistinguishable from "absent"
		// and falls back to the default, matching the historical board
		// behaviour. Distinguishing the two would need a nullable column.
		progress := booking.Progress
		if progress == 0 {
			progress = DefaultProgress
		}

		color := booking.Color
		if color == "" {
			color = DefaultColor
		}

		dependencies := booking.Dependencies
		if len(dependencies) == 0 {
			dependencies = datatypes.JSON("[]")
		}

		rows = append(rows, GanttRow{
			ID:           booking.BookingID,
			Text:         TaskLabel(booking.Name, booking.StartTime, booking.EndTime),
			StartDate:    visibleStart,
			Duration:     duration,
			Progress:     progress,
			Type:         "task",
			Dependencies: dependencies,
			Color:        color,
		})
	}

	return rows
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
