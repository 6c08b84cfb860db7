package models

import "time"

type Animal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint  `gorm:"not null" json:"owner_id"`
	Owner   Owner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Species string `gorm:"size:50;not null" json:"species"`
	Breed   string `gorm:"size:100" json:"breed"`

	DateOfBirth *time.Time `json:"date_of_birth"`
	Sex         string     `gorm:"size:10" json:"sex"`
	WeightKg    *float64   `json:"weight_kg"`

	ImportantNotes string `gorm:"size:1000" json:"important_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
