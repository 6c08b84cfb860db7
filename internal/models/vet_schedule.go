package models

import "time"

// VetSchedule is one recurring weekly availability window: the vet works on
// Weekday between StartTime and EndTime. At most one active row exists per
// (veterinarian, weekday).
type VetSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VeterinarianID uint `gorm:"not null;index" json:"veterinarian_id"`

	// 0 = Sunday .. 6 = Saturday, matching time.Weekday.
	Weekday int `gorm:"not null" json:"weekday"`

	// "15:04" formatted times of day.
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
