package appointment

import (
	"context"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/clock"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   clock.Clock
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	now clock.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditD,
		now:   now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	clinicalNote string,
	completedBy *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if clinicalNote != "" {
		ap.ClinicalNote = clinicalNote
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   completedBy,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
