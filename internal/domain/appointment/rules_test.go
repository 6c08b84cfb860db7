package appointment

import (
	"testing"
	"time"

	"github.com/animalcarehq/animalcare-api/internal/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.Local)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"identical intervals", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"back to back, a before b", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"back to back, b before a", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(8, 0), at(9, 0), at(14, 0), at(15, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			if got != tc.want {
				t.Errorf("Overlaps() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFitsSchedule(t *testing.T) {
	window := []models.VetSchedule{
		{Weekday: 1, StartTime: "08:00", EndTime: "16:00", Active: true},
	}

	cases := []struct {
		name  string
		rows  []models.VetSchedule
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside window", window, at(9, 0), at(10, 0), true},
		{"exactly the window", window, at(8, 0), at(16, 0), true},
		{"ends at window end", window, at(15, 0), at(16, 0), true},
		{"starts before window", window, at(7, 30), at(8, 30), false},
		{"runs past window end", window, at(15, 30), at(16, 30), false},
		{"no rows", nil, at(9, 0), at(10, 0), false},
		{
			"inactive row does not count",
			[]models.VetSchedule{{Weekday: 1, StartTime: "08:00", EndTime: "16:00", Active: false}},
			at(9, 0), at(10, 0), false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FitsSchedule(tc.rows, tc.start, tc.end)
			if got != tc.want {
				t.Errorf("FitsSchedule() = %v, want %v", got, tc.want)
			}
		})
	}
}

// Two windows on the same day never merge: an interval spanning the gap is
// rejected even though each half would fit its own window.
func TestFitsScheduleNoUnion(t *testing.T) {
	rows := []models.VetSchedule{
		{Weekday: 1, StartTime: "08:00", EndTime: "12:00", Active: true},
		{Weekday: 1, StartTime: "12:00", EndTime: "16:00", Active: true},
	}

	if FitsSchedule(rows, at(11, 0), at(13, 0)) {
		t.Error("interval spanning two windows should not fit")
	}

	if !FitsSchedule(rows, at(11, 0), at(12, 0)) {
		t.Error("interval inside the morning window should fit")
	}
	if !FitsSchedule(rows, at(12, 0), at(13, 0)) {
		t.Error("interval inside the afternoon window should fit")
	}
}

func TestStatusTransitions(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		if err := CanCancel(s); err == nil {
			t.Errorf("CanCancel(%s) should fail", s)
		}
		if err := CanComplete(s); err == nil {
			t.Errorf("CanComplete(%s) should fail", s)
		}
		if err := CanMarkNoShow(s); err == nil {
			t.Errorf("CanMarkNoShow(%s) should fail", s)
		}
	}

	if err := CanCancel(StatusScheduled); err != nil {
		t.Errorf("CanCancel(scheduled) = %v", err)
	}
	if err := CanComplete(StatusScheduled); err != nil {
		t.Errorf("CanComplete(scheduled) = %v", err)
	}
	if err := CanMarkNoShow(StatusScheduled); err != nil {
		t.Errorf("CanMarkNoShow(scheduled) = %v", err)
	}
}
