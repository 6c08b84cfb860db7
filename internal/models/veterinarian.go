package models

import "time"

type Veterinarian struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Email     string `gorm:"size:200" json:"email"`
	Phone     string `gorm:"size:50" json:"phone"`

	SpecializationSummary string `gorm:"size:500" json:"specialization_summary"`

	// Soft-disable flag. A vet with future appointments is never hard-deleted.
	Active bool `gorm:"default:true" json:"active"`

	Specialties []Specialty `gorm:"many2many:veterinarian_specialties;" json:"specialties,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
