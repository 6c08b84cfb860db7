package schedule

import (
	"context"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/cache"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/schedule"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
)

// DeleteDay removes a single availability row, unless doing so would leave
// the vet below the minimum working days.
type DeleteDay struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewDeleteDay(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	c *cache.Cache,
) *DeleteDay {
	return &DeleteDay{repo: repo, audit: auditD, cache: c}
}

func (uc *DeleteDay) Execute(
	ctx context.Context,
	scheduleID uint,
	deletedBy *uint,
) error {

	row, err := uc.repo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return httperr.ErrBusiness("schedule_not_found")
	}

	remaining, err := uc.repo.CountActiveExcluding(ctx, row.VeterinarianID, row.ID)
	if err != nil {
		return err
	}
	if remaining < domain.MinWorkingDays {
		return httperr.ErrBusiness("schedule_minimum_days")
	}

	if err := uc.repo.DeleteSchedule(ctx, row.ID); err != nil {
		return err
	}

	uc.cache.InvalidateVetSlots(ctx, row.VeterinarianID)

	uc.audit.Dispatch(audit.Event{
		UserID:   deletedBy,
		Action:   "schedule_day_deleted",
		Entity:   "vet_schedule",
		EntityID: &row.ID,
	})

	return nil
}
