package schedule

import (
	"context"
	"time"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/cache"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/schedule"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// CreateWeekly creates the full weekly schedule of a veterinarian in one
// shot: one availability row per selected day, all with the canonical
// working hours. A vet that already has an active schedule must delete it
// first; create never merges.
type CreateWeekly struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewCreateWeekly(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	c *cache.Cache,
) *CreateWeekly {
	return &CreateWeekly{repo: repo, audit: auditD, cache: c}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateWeekly) Execute(
	ctx context.Context,
	vetID uint,
	selectedDays []time.Weekday,
	createdBy *uint,
) ([]models.VetSchedule, error) {

	vet, err := uc.repo.GetVeterinarian(ctx, vetID)
	if err != nil {
		return nil, httperr.ErrBusiness("veterinarian_not_found")
	}

	days := domain.NormalizeDays(selectedDays)
	if len(days) < domain.MinWorkingDays {
		return nil, httperr.ErrBusiness("too_few_days")
	}

	count, err := uc.repo.CountActiveExcluding(ctx, vet.ID, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("schedule_already_exists")
	}

	rows := make([]models.VetSchedule, 0, len(days))
	for _, d := range days {
		rows = append(rows, models.VetSchedule{
			VeterinarianID: vet.ID,
			Weekday:        int(d),
			StartTime:      domain.CanonicalStart,
			EndTime:        domain.CanonicalEnd,
			Active:         true,
		})
	}

	if err := uc.repo.CreateSchedules(ctx, rows); err != nil {
		return nil, err
	}

	uc.cache.InvalidateVetSlots(ctx, vet.ID)

	uc.audit.Dispatch(audit.Event{
		UserID:   createdBy,
		Action:   "schedule_created",
		Entity:   "veterinarian",
		EntityID: &vet.ID,
		Metadata: map[string]any{"days": days},
	})

	return rows, nil
}
