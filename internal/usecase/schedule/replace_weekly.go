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

// ReplaceWeekly updates a vet's weekly day selection as a set-difference:
// newly selected days get fresh canonical rows, deselected days lose their
// rows, and days present in both selections are not rewritten.
type ReplaceWeekly struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewReplaceWeekly(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	c *cache.Cache,
) *ReplaceWeekly {
	return &ReplaceWeekly{repo: repo, audit: auditD, cache: c}
}

func (uc *ReplaceWeekly) Execute(
	ctx context.Context,
	vetID uint,
	newSelectedDays []time.Weekday,
	originalDays []time.Weekday,
	updatedBy *uint,
) error {

	vet, err := uc.repo.GetVeterinarian(ctx, vetID)
	if err != nil {
		return httperr.ErrBusiness("veterinarian_not_found")
	}

	newDays := domain.NormalizeDays(newSelectedDays)
	if len(newDays) < domain.MinWorkingDays {
		return httperr.ErrBusiness("too_few_days")
	}

	toAdd, toRemove := domain.DiffDays(newDays, domain.NormalizeDays(originalDays))

	if len(toAdd) > 0 {
		rows := make([]models.VetSchedule, 0, len(toAdd))
		for _, d := range toAdd {
			rows = append(rows, models.VetSchedule{
				VeterinarianID: vet.ID,
				Weekday:        int(d),
				StartTime:      domain.CanonicalStart,
				EndTime:        domain.CanonicalEnd,
				Active:         true,
			})
		}
		if err := uc.repo.CreateSchedules(ctx, rows); err != nil {
			return err
		}
	}

	if len(toRemove) > 0 {
		if err := uc.repo.DeleteByDays(ctx, vet.ID, toRemove); err != nil {
			return err
		}
	}

	if len(toAdd) > 0 || len(toRemove) > 0 {
		uc.cache.InvalidateVetSlots(ctx, vet.ID)

		uc.audit.Dispatch(audit.Event{
			UserID:   updatedBy,
			Action:   "schedule_replaced",
			Entity:   "veterinarian",
			EntityID: &vet.ID,
			Metadata: map[string]any{"added": toAdd, "removed": toRemove},
		})
	}

	return nil
}
