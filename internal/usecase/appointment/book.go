package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/cache"
	"github.com/animalcarehq/animalcare-api/internal/clock"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
	"github.com/animalcarehq/animalcare-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	AnimalID        uint
	VeterinarianID  uint
	StartTime       string // "2006-01-02 15:04", clinic-local
	DurationMinutes int
	Reason          string

	BookedBy *uint
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	notify      *notify.Dispatcher
	cache       *cache.Cache
	now         clock.Clock
	maxDuration int
}

func NewBook(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	notifyD *notify.Dispatcher,
	c *cache.Cache,
	now clock.Clock,
	maxDuration int,
) *Book {
	if maxDuration <= 0 {
		maxDuration = domain.MaxDurationMinutes
	}
	return &Book{
		repo:        repo,
		audit:       auditD,
		notify:      notifyD,
		cache:       c,
		now:         now,
		maxDuration: maxDuration,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(ctx context.Context, in BookInput) (*models.Appointment, error) {

	start, err := parseClinicDateTime(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	v, err := validateBooking(ctx, uc.repo, uc.now, uc.maxDuration, bookingRequest{
		VeterinarianID:  in.VeterinarianID,
		AnimalID:        in.AnimalID,
		StartTime:       start,
		DurationMinutes: in.DurationMinutes,
	}, 0)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Reference:       uuid.NewString(),
		AnimalID:        in.AnimalID,
		VeterinarianID:  in.VeterinarianID,
		StartTime:       v.Start,
		EndTime:         v.End,
		DurationMinutes: in.DurationMinutes,
		Status:          string(domain.InitialStatus()),
		Reason:          in.Reason,
		Version:         1,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// A concurrent booking may win the race between the conflict check
		// and this insert; the exclusion constraint reports it as 23P01.
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.cache.InvalidateVetSlots(ctx, in.VeterinarianID)

	uc.audit.Dispatch(audit.Event{
		UserID:   in.BookedBy,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notify.Dispatch(notify.Message{
		To:      v.Animal.Owner.Email,
		Subject: "Appointment confirmed",
		Body: fmt.Sprintf(
			"Your appointment for %s with Dr. %s %s is confirmed for %s (reference %s).",
			v.Animal.Name,
			v.Veterinarian.FirstName,
			v.Veterinarian.LastName,
			v.Start.Format("Mon, 02 Jan 2006 15:04"),
			ap.Reference,
		),
	})

	return ap, nil
}
