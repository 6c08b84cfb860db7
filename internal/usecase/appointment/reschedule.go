package appointment

import (
	"context"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/cache"
	"github.com/animalcarehq/animalcare-api/internal/clock"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleInput struct {
	AppointmentID uint

	AnimalID        uint
	VeterinarianID  uint
	StartTime       string // "2006-01-02 15:04", clinic-local
	DurationMinutes int
	Reason          string
	ClinicalNote    string

	// Version the caller last read; a mismatch means someone else edited
	// the row in the meantime.
	Version int

	UpdatedBy *uint
}

// ======================================================
// USE CASE
// ======================================================

// Reschedule edits an appointment under the same acceptance rules as
// booking, except the row being edited never conflicts with itself.
type Reschedule struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	cache       *cache.Cache
	now         clock.Clock
	maxDuration int
}

func NewReschedule(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	c *cache.Cache,
	now clock.Clock,
	maxDuration int,
) *Reschedule {
	if maxDuration <= 0 {
		maxDuration = domain.MaxDurationMinutes
	}
	return &Reschedule{
		repo:        repo,
		audit:       auditD,
		cache:       c,
		now:         now,
		maxDuration: maxDuration,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Reschedule) Execute(ctx context.Context, in RescheduleInput) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	start, err := parseClinicDateTime(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	v, err := validateBooking(ctx, uc.repo, uc.now, uc.maxDuration, bookingRequest{
		VeterinarianID:  in.VeterinarianID,
		AnimalID:        in.AnimalID,
		StartTime:       start,
		DurationMinutes: in.DurationMinutes,
	}, ap.ID)
	if err != nil {
		return nil, err
	}

	previousVetID := ap.VeterinarianID

	ap.AnimalID = in.AnimalID
	ap.VeterinarianID = in.VeterinarianID
	ap.StartTime = v.Start
	ap.EndTime = v.End
	ap.DurationMinutes = in.DurationMinutes
	ap.Reason = in.Reason
	ap.ClinicalNote = in.ClinicalNote
	ap.Version = in.Version

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.cache.InvalidateVetSlots(ctx, in.VeterinarianID)
	if previousVetID != in.VeterinarianID {
		uc.cache.InvalidateVetSlots(ctx, previousVetID)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UpdatedBy,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
