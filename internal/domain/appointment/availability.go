package appointment

import "time"

type SlotsInput struct {
	VeterinarianID  uint
	Date            time.Time
	DurationMinutes int
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
