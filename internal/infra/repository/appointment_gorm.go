package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetVeterinarian(
	ctx context.Context,
	id uint,
) (*models.Veterinarian, error) {

	var vet models.Veterinarian
	if err := r.db.WithContext(ctx).First(&vet, id).Error; err != nil {
		return nil, err
	}
	return &vet, nil
}

func (r *AppointmentGormRepository) GetAnimal(
	ctx context.Context,
	id uint,
) (*models.Animal, error) {

	var animal models.Animal
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&animal, id).Error; err != nil {
		return nil, err
	}
	return &animal, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveSchedules(
	ctx context.Context,
	vetID uint,
	weekday time.Weekday,
) ([]models.VetSchedule, error) {

	var rows []models.VetSchedule
	if err := r.db.WithContext(ctx).
		Where("veterinarian_id = ? AND weekday = ? AND active = ?", vetID, int(weekday), true).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Conflict check
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedForDay(
	ctx context.Context,
	vetID uint,
	dayStart time.Time,
	dayEnd time.Time,
	excludeID uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"veterinarian_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			vetID, string(domain.StatusCancelled), dayStart, dayEnd,
		)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []models.Appointment
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Animal").
		Preload("Animal.Owner").
		Preload("Veterinarian").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// UpdateAppointment writes the row only when the caller still holds the
// current version; losing the race surfaces stale_appointment so the caller
// reloads instead of silently overwriting.
func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND version = ?", ap.ID, ap.Version).
		Updates(map[string]any{
			"animal_id":        ap.AnimalID,
			"veterinarian_id":  ap.VeterinarianID,
			"start_time":       ap.StartTime,
			"end_time":         ap.EndTime,
			"duration_minutes": ap.DurationMinutes,
			"status":           ap.Status,
			"reason":           ap.Reason,
			"clinical_note":    ap.ClinicalNote,
			"cancelled_at":     ap.CancelledAt,
			"completed_at":     ap.CompletedAt,
			"version":          ap.Version + 1,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("stale_appointment")
	}

	ap.Version++
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
	search string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Animal").
		Preload("Animal.Owner").
		Preload("Veterinarian").
		Where("start_time >= ? AND start_time < ?", start, end)

	if vetID > 0 {
		q = q.Where("veterinarian_id = ?", vetID)
	}

	if search != "" {
		like := "%" + search + "%"
		q = q.Joins("JOIN animals ON animals.id = appointments.animal_id").
			Joins("JOIN owners ON owners.id = animals.owner_id").
			Where(
				"LOWER(animals.name) LIKE LOWER(?) OR LOWER(owners.first_name) LIKE LOWER(?) OR LOWER(owners.last_name) LIKE LOWER(?)",
				like, like, like,
			)
	}

	var rows []models.Appointment
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
