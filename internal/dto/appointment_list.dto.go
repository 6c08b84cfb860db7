package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	Reference        string    `json:"reference"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	Status           string    `json:"status"`
	Reason           string    `json:"reason"`
	AnimalName       string    `json:"animal_name"`
	OwnerName        string    `json:"owner_name"`
	VeterinarianName string    `json:"veterinarian_name"`
}
