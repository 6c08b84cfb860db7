package schedule

import (
	"sort"
	"time"
)

// Canonical working window applied to every availability row the editor
// creates.
const (
	CanonicalStart = "08:00"
	CanonicalEnd   = "16:00"
)

// MinWorkingDays is the floor on active weekdays a vet with a schedule must
// keep.
const MinWorkingDays = 3

// NormalizeDays deduplicates and sorts a weekday selection.
func NormalizeDays(days []time.Weekday) []time.Weekday {
	seen := make(map[time.Weekday]bool, len(days))
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DiffDays computes the set difference between a new selection and the
// original one. Days present in both sets appear in neither result, so
// unchanged rows are left untouched.
func DiffDays(newDays, originalDays []time.Weekday) (toAdd, toRemove []time.Weekday) {
	inNew := make(map[time.Weekday]bool, len(newDays))
	for _, d := range newDays {
		inNew[d] = true
	}
	inOriginal := make(map[time.Weekday]bool, len(originalDays))
	for _, d := range originalDays {
		inOriginal[d] = true
	}

	for _, d := range newDays {
		if !inOriginal[d] {
			toAdd = append(toAdd, d)
		}
	}
	for _, d := range originalDays {
		if !inNew[d] {
			toRemove = append(toRemove, d)
		}
	}

	return toAdd, toRemove
}
