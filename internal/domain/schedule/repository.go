package schedule

import (
	"context"
	"time"

	"github.com/animalcarehq/animalcare-api/internal/models"
)

type Repository interface {
	GetVeterinarian(
		ctx context.Context,
		id uint,
	) (*models.Veterinarian, error)

	GetSchedule(
		ctx context.Context,
		id uint,
	) (*models.VetSchedule, error)

	ListActive(
		ctx context.Context,
		vetID uint,
	) ([]models.VetSchedule, error)

	// CountActiveExcluding counts the vet's active rows, leaving out the row
	// with excludeID when excludeID > 0.
	CountActiveExcluding(
		ctx context.Context,
		vetID uint,
		excludeID uint,
	) (int64, error)

	CreateSchedules(
		ctx context.Context,
		rows []models.VetSchedule,
	) error

	DeleteByDays(
		ctx context.Context,
		vetID uint,
		days []time.Weekday,
	) error

	DeleteSchedule(
		ctx context.Context,
		id uint,
	) error

	DeleteAllForVet(
		ctx context.Context,
		vetID uint,
	) error
}
