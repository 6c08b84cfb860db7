package appointment

import (
	"context"
	"time"

	"github.com/animalcarehq/animalcare-api/internal/models"
)

type Repository interface {
	// -------- References --------
	GetVeterinarian(
		ctx context.Context,
		id uint,
	) (*models.Veterinarian, error)

	GetAnimal(
		ctx context.Context,
		id uint,
	) (*models.Animal, error)

	// -------- Availability --------
	ListActiveSchedules(
		ctx context.Context,
		vetID uint,
		weekday time.Weekday,
	) ([]models.VetSchedule, error)

	// -------- Conflict check --------

	// ListBookedForDay returns the non-cancelled appointments for the vet
	// whose start falls in [dayStart, dayEnd), excluding the row with
	// excludeID when excludeID > 0.
	ListBookedForDay(
		ctx context.Context,
		vetID uint,
		dayStart time.Time,
		dayEnd time.Time,
		excludeID uint,
	) ([]models.Appointment, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// UpdateAppointment persists ap only if its Version still matches the
	// stored row, bumping the version on success. A lost race returns the
	// stale_appointment business error.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing --------

	// ListAppointmentsForPeriod returns appointments starting in
	// [start, end), newest-first preloads included. vetID == 0 means all
	// veterinarians; search filters on animal or owner name.
	ListAppointmentsForPeriod(
		ctx context.Context,
		vetID uint,
		start time.Time,
		end time.Time,
		search string,
	) ([]models.Appointment, error)
}
