package cashflow

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestAssignCycle(t *testing.T) {
	base := d(2025, time.January, 1)

	cases := []struct {
		name          string
		actual, base  time.Time
		cadenceDays   int
		fallbackIndex int
		want          int
	}{
		{"same day is cycle 1", base, base, 30, 0, 1},
		{"day 29 is cycle 1", d(2025, time.January, 30), base, 30, 0, 1},
		{"day 30 rolls into cycle 2", d(2025, time.January, 31), base, 30, 0, 2},
		{"day 50 is cycle 2", d(2025, time.February, 20), base, 30, 0, 2},
		{"before base collapses to 1", d(2024, time.December, 15), base, 30, 5, 1},
		{"zero actual falls back", time.Time{}, base, 30, 3, 4},
		{"zero base falls back", d(2025, time.February, 20), time.Time{}, 30, 0, 1},
		{"non-positive cadence falls back", d(2025, time.February, 20), base, 0, 2, 3},
		{"weekly cadence", d(2025, time.January, 15), base, 7, 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AssignCycle(tc.actual, tc.base, tc.cadenceDays, tc.fallbackIndex)
			if got != tc.want {
				t.Fatalf("AssignCycle = %d, want %d", got, tc.want)
			}
			// deterministic: same inputs, same answer
			if again := AssignCycle(tc.actual, tc.base, tc.cadenceDays, tc.fallbackIndex); again != got {
				t.Fatalf("AssignCycle not deterministic: %d then %d", got, again)
			}
		})
	}
}

func TestDueDate(t *testing.T) {
	base := d(2025, time.January, 1)

	// day-50 payment lands in cycle 2, due at day 60
	cycle := AssignCycle(d(2025, time.February, 20), base, 30, 0)
	if cycle != 2 {
		t.Fatalf("cycle = %d, want 2", cycle)
	}
	due := DueDate(base, 30, cycle)
	if want := d(2025, time.March, 2); !due.Equal(want) {
		t.Fatalf("due = %v, want %v", due, want)
	}

	if got := DueDate(base, 30, 1); !got.Equal(d(2025, time.January, 31)) {
		t.Fatalf("cycle 1 due = %v", got)
	}
	if got := DueDate(time.Time{}, 30, 1); !got.IsZero() {
		t.Fatalf("zero base should stay zero, got %v", got)
	}
}
