package Parser

import (
	"strings"
	"testing"
	"time"
)

func makeLine(name, startDate, startTime, endDate, endTime string) string {
	fields := []string{
		"1", "A", "B", "V1", name, "LOC", "x", "P1",
		startDate, "ok", startTime, endDate, endTime, "extra",
	}
	return strings.Join(fields, "|")
}

func TestParseScheduleValidLine(t *testing.T) {
	line := makeLine("TRK-42", "01/03/2024", "9:00", "03/03/2024", "17:30")

	bookings, diagnostics := ParseSchedule(line)
	if len(diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnostics)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}

	b := bookings[0]
	if b.Name != "TRK-42" {
		t.Errorf("expected name TRK-42, got %q", b.Name)
	}
	wantDebut := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !b.Debut.Equal(wantDebut) {
		t.Errorf("expected debut %v, got %v", wantDebut, b.Debut)
	}
	wantFin := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !b.Fin.Equal(wantFin) {
		t.Errorf("expected fin %v, got %v", wantFin, b.Fin)
	}
	if b.StartTime != "9:00" {
		t.Errorf("expected startTime 9:00, got %q", b.StartTime)
	}
	if b.EndTime != "17:30" {
		t.Errorf("expected endTime 17:30, got %q", b.EndTime)
	}
	if b.BookingID == "" {
		t.Error("expected a generated booking id")
	}
}

func TestParseScheduleInsufficientFields(t *testing.T) {
	content := "1|A|B|V1|V2"

	bookings, diagnostics := ParseSchedule(content)
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings, got %d", len(bookings))
	}
	if len(diagnostics) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d", len(diagnostics))
	}
	d := diagnostics[0]
	if d.Line != 1 {
		t.Errorf("expected diagnostic for line 1, got %d", d.Line)
	}
	if d.Reason != "insufficient fields" {
		t.Errorf("expected reason %q, got %q", "insufficient fields", d.Reason)
	}
	if d.Raw != content {
		t.Errorf("expected raw line preserved, got %q", d.Raw)
	}
}

func TestParseScheduleInvalidCalendarDate(t *testing.T) {
	line := makeLine("V2", "31/02/2024", "9:00", "03/03/2024", "17:30")

	bookings, diagnostics := ParseSchedule(line)
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings for 31/02/2024, got %d", len(bookings))
	}
	if len(diagnostics) != 1 || diagnostics[0].Reason != "invalid date" {
		t.Fatalf("expected one invalid date diagnostic, got %v", diagnostics)
	}
}

func TestParseScheduleNonNumericDate(t *testing.T) {
	line := makeLine("V2", "aa/03/2024", "9:00", "03/03/2024", "17:30")

	bookings, diagnostics := ParseSchedule(line)
	if len(bookings) != 0 {
		t.Fatalf("expected no bookings, got %d", len(bookings))
	}
	if len(diagnostics) != 1 || diagnostics[0].Reason != "invalid date" {
		t.Fatalf("expected one invalid date diagnostic, got %v", diagnostics)
	}
}

func TestParseScheduleMalformedTime(t *testing.T) {
	cases := map[string]string{
		"missing colon": makeLine("V2", "01/03/2024", "900", "03/03/2024", "17:30"),
		"non-numeric":   makeLine("V2", "01/03/2024", "9:xx", "03/03/2024", "17:30"),
	}

	for name, line := range cases {
		bookings, diagnostics := ParseSchedule(line)
		if len(bookings) != 0 {
			t.Errorf("%s: expected no bookings, got %d", name, len(bookings))
		}
		if len(diagnostics) != 1 || diagnostics[0].Reason != "invalid time" {
			t.Errorf("%s: expected one invalid time diagnostic, got %v", name, diagnostics)
		}
	}
}

func TestParseScheduleNormalizesMinutes(t *testing.T) {
	line := makeLine("V2", "01/03/2024", "9:5", "03/03/2024", "7:07")

	bookings, diagnostics := ParseSchedule(line)
	if len(diagnostics) != 0 || len(bookings) != 1 {
		t.Fatalf("expected one clean booking, got %d bookings, %v", len(bookings), diagnostics)
	}
	if bookings[0].StartTime != "9:05" {
		t.Errorf("expected startTime 9:05, got %q", bookings[0].StartTime)
	}
	if bookings[0].EndTime != "7:07" {
		t.Errorf("expected endTime 7:07, got %q", bookings[0].EndTime)
	}
}

func TestParseScheduleSkipsAndContinues(t *testing.T) {
	content := strings.Join([]string{
		makeLine("FIRST", "01/03/2024", "9:00", "02/03/2024", "17:30"),
		"too|few|fields",
		makeLine("SECOND", "05/03/2024", "8:00", "06/03/2024", "16:00"),
	}, "\n")

	bookings, diagnostics := ParseSchedule(content)
	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if len(diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diagnostics))
	}
	if diagnostics[0].Line != 2 {
		t.Errorf("expected diagnostic for line 2, got %d", diagnostics[0].Line)
	}

	// Input order is preserved among valid lines, with fresh unique ids.
	if bookings[0].Name != "FIRST" || bookings[1].Name != "SECOND" {
		t.Errorf("expected input order preserved, got %q then %q", bookings[0].Name, bookings[1].Name)
	}
	if bookings[0].BookingID == bookings[1].BookingID {
		t.Error("expected distinct booking ids")
	}
}

func TestParseScheduleTrimsFields(t *testing.T) {
	line := " 1 | A | B | V1 |  TRK-7  | LOC | x | P1 | 01/03/2024 | ok | 9:00 | 03/03/2024 | 17:30 | end "

	bookings, diagnostics := ParseSchedule(line)
	if len(diagnostics) != 0 || len(bookings) != 1 {
		t.Fatalf("expected one clean booking, got %d bookings, %v", len(bookings), diagnostics)
	}
	if bookings[0].Name != "TRK-7" {
		t.Errorf("expected trimmed name TRK-7, got %q", bookings[0].Name)
	}
}

func TestSplitLineExposesLeadingFields(t *testing.T) {
	fields := SplitLine(makeLine("V2", "01/03/2024", "9:00", "03/03/2024", "17:30"))
	if len(fields) != 14 {
		t.Fatalf("expected 14 fields, got %d", len(fields))
	}
	if fields[0] != "1" || fields[1] != "A" || fields[7] != "P1" {
		t.Errorf("unexpected leading fields: %v", fields[:8])
	}
}
