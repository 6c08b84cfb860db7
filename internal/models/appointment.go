package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Public booking reference handed to owners.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	AnimalID uint   `gorm:"not null" json:"animal_id"`
	Animal   Animal `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"animal"`

	VeterinarianID uint         `gorm:"not null;index" json:"veterinarian_id"`
	Veterinarian   Veterinarian `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"veterinarian"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	// EndTime is always StartTime + DurationMinutes. It is stored so the
	// database exclusion constraint can range over it.
	EndTime         time.Time `gorm:"not null" json:"end_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`

	// One of: scheduled, completed, cancelled, no_show.
	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Reason       string `gorm:"size:500" json:"reason"`
	ClinicalNote string `gorm:"size:1000" json:"clinical_note"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Optimistic concurrency token; bumped on every update.
	Version int `gorm:"default:1" json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
