package Gantt

import (
	"testing"
	"time"
)

func TestMondayOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday stays", day(2024, time.March, 4), day(2024, time.March, 4)},
		{"midweek", day(2024, time.March, 6), day(2024, time.March, 4)},
		{"saturday", day(2024, time.March, 9), day(2024, time.March, 4)},
		// Sunday belongs to the preceding week: Monday is six days earlier.
		{"sunday", day(2024, time.March, 10), day(2024, time.March, 4)},
		{"next monday", day(2024, time.March, 11), day(2024, time.March, 11)},
	}

	for _, tc := range cases {
		got := MondayOfWeek(tc.in)
		if !got.Equal(tc.want) {
			t.Errorf("%s: MondayOfWeek(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestResolveWindowStart(t *testing.T) {
	sunday := day(2024, time.March, 10)

	snapped := ResolveWindowStart(sunday, true)
	if !snapped.Equal(day(2024, time.March, 4)) {
		t.Errorf("week mode: expected snap to 2024-03-04, got %v", snapped)
	}

	free := ResolveWindowStart(sunday, false)
	if !free.Equal(sunday) {
		t.Errorf("free mode: expected raw date %v, got %v", sunday, free)
	}
}
