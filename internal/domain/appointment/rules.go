package appointment

import (
	"time"

	"github.com/animalcarehq/animalcare-api/internal/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back bookings, where one interval ends
// exactly when the other starts, never overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FitsSchedule reports whether [start, end) is fully contained in at least
// one of the given availability rows, which must all belong to start's
// weekday. Containment must hold within a single row; windows are not
// unioned. An interval that runs past midnight can never fit.
func FitsSchedule(rows []models.VetSchedule, start, end time.Time) bool {
	for _, row := range rows {
		if !row.Active || row.StartTime == "" || row.EndTime == "" {
			continue
		}

		windowStart := atTimeOfDay(start, row.StartTime)
		windowEnd := atTimeOfDay(start, row.EndTime)

		if !start.Before(windowStart) && !end.After(windowEnd) {
			return true
		}
	}

	return false
}

// atTimeOfDay anchors an "15:04" time-of-day on the date of ref.
func atTimeOfDay(ref time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	)
}
