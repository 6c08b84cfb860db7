package models

import "time"

type Owner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Phone     string `gorm:"size:50" json:"phone"`
	Email     string `gorm:"size:200" json:"email"`
	Address   string `gorm:"size:300" json:"address"`

	Animals []Animal `json:"animals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
