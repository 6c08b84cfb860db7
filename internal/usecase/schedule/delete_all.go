package schedule

import (
	"context"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/cache"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/schedule"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
)

// DeleteAll decommissions a vet's whole weekly schedule. No minimum-days
// check applies: the vet deliberately ends up with no schedule, usually
// right before a fresh create.
type DeleteAll struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Cache
}

func NewDeleteAll(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	c *cache.Cache,
) *DeleteAll {
	return &DeleteAll{repo: repo, audit: auditD, cache: c}
}

func (uc *DeleteAll) Execute(
	ctx context.Context,
	vetID uint,
	deletedBy *uint,
) error {

	vet, err := uc.repo.GetVeterinarian(ctx, vetID)
	if err != nil {
		return httperr.ErrBusiness("veterinarian_not_found")
	}

	if err := uc.repo.DeleteAllForVet(ctx, vet.ID); err != nil {
		return err
	}

	uc.cache.InvalidateVetSlots(ctx, vet.ID)

	uc.audit.Dispatch(audit.Event{
		UserID:   deletedBy,
		Action:   "schedule_deleted_all",
		Entity:   "veterinarian",
		EntityID: &vet.ID,
	})

	return nil
}
