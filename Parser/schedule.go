package Parser

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"Planify/Models"

	"github.com/google/uuid"
)

// MinFields is the minimum number of pipe-separated fields a schedule line
// must carry before it can be decomposed. Lines below this are skipped.
const MinFields = 13

// Positions of the fields this import actually consumes. The leading fields
// (external id, type, status, the first vehicle identifier, priority, start
// status flag) belong to the exporting system and are not carried over.
const (
	fieldName      = 4
	fieldStartDate = 8
	fieldStartTime = 10
	fieldEndDate   = 11
	fieldEndTime   = 12
)

// Diagnostic records one skipped schedule line. Parsing never aborts on a bad
// line; every rejected line produces exactly one Diagnostic.
type Diagnostic struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Raw    string `json:"raw"`
}

// SplitLine splits a raw schedule line into its trimmed pipe-separated fields.
// Exposed so callers that need the leading external fields can get at them.
func SplitLine(line string) []string {
	fields := strings.Split(line, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// ParseSchedule turns the raw text of an exported schedule log into bookings.
// Each line becomes one booking with a freshly generated id; malformed lines
// are skipped and reported through the returned diagnostics, preserving input
// order among the lines that survive.
func ParseSchedule(content string) ([]Models.Booking, []Diagnostic) {
	lines := strings.Split(content, "\n")
	bookings := make([]Models.Booking, 0, len(lines))
	diagnostics := make([]Diagnostic, 0)

	skip := func(lineNo int, reason, raw string) {
		log.Printf("Line %d skipped (%s): %s\n", lineNo, reason, raw)
		diagnostics = append(diagnostics, Diagnostic{Line: lineNo, Reason: reason, Raw: raw})
	}

	for i, line := range lines {
		lineNo := i + 1
		fields := SplitLine(line)
		if len(fields) < MinFields {
			skip(lineNo, "insufficient fields", line)
			continue
		}

		debut, err := parseDay(fields[fieldStartDate])
		if err != nil {
			skip(lineNo, "invalid date", line)
			continue
		}
		fin, err := parseDay(fields[fieldEndDate])
		if err != nil {
			skip(lineNo, "invalid date", line)
			continue
		}

		startTime, err := normalizeClock(fields[fieldStartTime])
		if err != nil {
			skip(lineNo, "invalid time", line)
			continue
		}
		endTime, err := normalizeClock(fields[fieldEndTime])
		if err != nil {
			skip(lineNo, "invalid time", line)
			continue
		}

		bookings = append(bookings, Models.Booking{
			BookingID: uuid.NewString(),
			Name:      fields[fieldName],
			Debut:     debut,
			Fin:       fin,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	return bookings, diagnostics
}

// parseDay parses a DD/MM/YYYY date into a midnight UTC instant. Dates that
// only normalize into a valid instant (e.g. 31/02/2024) are rejected.
func parseDay(raw string) (time.Time, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("expected DD/MM/YYYY, got %q", raw)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad day in %q: %w", raw, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad month in %q: %w", raw, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad year in %q: %w", raw, err)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("not a calendar date: %q", raw)
	}
	return date, nil
}

// normalizeClock validates an H:MM / HH:MM clock string and normalizes the
// minutes to two digits.
func normalizeClock(raw string) (string, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("expected H:MM, got %q", raw)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("bad hour in %q: %w", raw, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("bad minute in %q: %w", raw, err)
	}

	return fmt.Sprintf("%d:%02d", hour, minute), nil
}
