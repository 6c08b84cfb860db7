package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/animalcarehq/animalcare-api/internal/domain/schedule"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) GetVeterinarian(
	ctx context.Context,
	id uint,
) (*models.Veterinarian, error) {

	var vet models.Veterinarian
	if err := r.db.WithContext(ctx).First(&vet, id).Error; err != nil {
		return nil, err
	}
	return &vet, nil
}

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	id uint,
) (*models.VetSchedule, error) {

	var row models.VetSchedule
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ScheduleGormRepository) ListActive(
	ctx context.Context,
	vetID uint,
) ([]models.VetSchedule, error) {

	var rows []models.VetSchedule
	if err := r.db.WithContext(ctx).
		Where("veterinarian_id = ? AND active = ?", vetID, true).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) CountActiveExcluding(
	ctx context.Context,
	vetID uint,
	excludeID uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.VetSchedule{}).
		Where("veterinarian_id = ? AND active = ?", vetID, true)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ScheduleGormRepository) CreateSchedules(
	ctx context.Context,
	rows []models.VetSchedule,
) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ScheduleGormRepository) DeleteByDays(
	ctx context.Context,
	vetID uint,
	days []time.Weekday,
) error {
	if len(days) == 0 {
		return nil
	}

	weekdays := make([]int, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, int(d))
	}

	return r.db.WithContext(ctx).
		Where("veterinarian_id = ? AND weekday IN ?", vetID, weekdays).
		Delete(&models.VetSchedule{}).Error
}

func (r *ScheduleGormRepository) DeleteSchedule(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.VetSchedule{}, id).Error
}

func (r *ScheduleGormRepository) DeleteAllForVet(
	ctx context.Context,
	vetID uint,
) error {
	return r.db.WithContext(ctx).
		Where("veterinarian_id = ?", vetID).
		Delete(&models.VetSchedule{}).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
