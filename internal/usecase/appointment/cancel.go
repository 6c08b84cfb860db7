package appointment

import (
	"context"
	"fmt"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/cache"
	"github.com/animalcarehq/animalcare-api/internal/clock"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
	"github.com/animalcarehq/animalcare-api/internal/notify"
)

type CancelAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
	cache  *cache.Cache
	now    clock.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	notifyD *notify.Dispatcher,
	c *cache.Cache,
	now clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		audit:  auditD,
		notify: notifyD,
		cache:  c,
		now:    now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	cancelledBy *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateVetSlots(ctx, ap.VeterinarianID)

	uc.audit.Dispatch(audit.Event{
		UserID:   cancelledBy,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify.Dispatch(notify.Message{
		To:      ap.Animal.Owner.Email,
		Subject: "Appointment cancelled",
		Body: fmt.Sprintf(
			"The appointment for %s on %s was cancelled (reference %s).",
			ap.Animal.Name,
			ap.StartTime.Format("Mon, 02 Jan 2006 15:04"),
			ap.Reference,
		),
	})

	return ap, nil
}
