package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:200;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// One of: admin, veterinarian, receptionist.
	Role string `gorm:"size:20;default:'receptionist'" json:"role"`

	// Optional link to the staff profile this account belongs to.
	VeterinarianID *uint `json:"veterinarian_id"`
	ReceptionistID *uint `json:"receptionist_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
