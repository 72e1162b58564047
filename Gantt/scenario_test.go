package Gantt_test

import (
	"testing"
	"time"

	"Planify/Gantt"
	"Planify/Parser"
)

// Full import-to-board path: one exported schedule line parsed and projected
// onto a week window that starts mid-booking.
func TestImportedLineClippedToWindow(t *testing.T) {
	line := "1|A|B|V1|V2|LOC|x|P1|01/03/2024|ok|9:00|03/03/2024|17:30|extra"

	bookings, diagnostics := Parser.ParseSchedule(line)
	if len(diagnostics) != 0 {
		t.Fatalf("expected a clean parse, got %v", diagnostics)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}

	b := bookings[0]
	if b.Name != "V2" || b.StartTime != "9:00" || b.EndTime != "17:30" {
		t.Fatalf("unexpected booking fields: %+v", b)
	}

	window := Gantt.Window{
		StartDate: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		DayCount:  7,
	}

	rows := Gantt.ClipToWindow(bookings, window)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if !row.StartDate.Equal(window.StartDate) {
		t.Errorf("expected visible start %v, got %v", window.StartDate, row.StartDate)
	}
	if row.Duration != 2 {
		t.Errorf("expected duration 2, got %d", row.Duration)
	}
	if row.Text != "V2 (9:00 - 17:30)" {
		t.Errorf("unexpected row text: %q", row.Text)
	}
}
