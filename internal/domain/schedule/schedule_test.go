package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestNormalizeDays(t *testing.T) {
	cases := []struct {
		name string
		in   []time.Weekday
		want []time.Weekday
	}{
		{
			"sorted and deduplicated",
			[]time.Weekday{time.Friday, time.Monday, time.Monday, time.Wednesday},
			[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			"out of range dropped",
			[]time.Weekday{time.Monday, time.Weekday(7), time.Weekday(-1)},
			[]time.Weekday{time.Monday},
		},
		{"empty", nil, []time.Weekday{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeDays(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NormalizeDays(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDiffDays(t *testing.T) {
	toAdd, toRemove := DiffDays(
		[]time.Weekday{time.Monday, time.Tuesday, time.Thursday},
		[]time.Weekday{time.Monday, time.Wednesday, time.Thursday},
	)

	if !reflect.DeepEqual(toAdd, []time.Weekday{time.Tuesday}) {
		t.Errorf("toAdd = %v, want [Tuesday]", toAdd)
	}
	if !reflect.DeepEqual(toRemove, []time.Weekday{time.Wednesday}) {
		t.Errorf("toRemove = %v, want [Wednesday]", toRemove)
	}
}

// Equal selections must produce an empty diff so a replace with no changes
// touches nothing.
func TestDiffDaysEqualSets(t *testing.T) {
	days := []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	toAdd, toRemove := DiffDays(days, days)

	if len(toAdd) != 0 || len(toRemove) != 0 {
		t.Errorf("diff of equal sets = add %v remove %v, want empty", toAdd, toRemove)
	}
}
