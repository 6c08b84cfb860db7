package appointment

import (
	"context"
	"time"

	"github.com/animalcarehq/animalcare-api/internal/clock"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type bookingRequest struct {
	VeterinarianID  uint
	AnimalID        uint
	StartTime       time.Time
	DurationMinutes int
}

type validatedBooking struct {
	Veterinarian *models.Veterinarian
	Animal       *models.Animal
	Start        time.Time
	End          time.Time
}

// validateBooking runs the acceptance checks shared by booking and
// rescheduling, in order, stopping at the first failure:
//
//  1. vet and animal must exist, duration must be 1..maxDuration
//  2. start must not be in the past
//  3. [start, end) must fit inside one availability window for that weekday
//  4. [start, end) must not overlap another non-cancelled appointment for
//     the vet on the same date (excludeID leaves out the row being edited)
//
// It performs no writes; rejections are business errors.
func validateBooking(
	ctx context.Context,
	repo domain.Repository,
	now clock.Clock,
	maxDuration int,
	req bookingRequest,
	excludeID uint,
) (*validatedBooking, error) {

	// --------------------------------------------------
	// 1. Structural checks
	// --------------------------------------------------
	vet, err := repo.GetVeterinarian(ctx, req.VeterinarianID)
	if err != nil {
		return nil, httperr.ErrBusiness("veterinarian_not_found")
	}

	animal, err := repo.GetAnimal(ctx, req.AnimalID)
	if err != nil {
		return nil, httperr.ErrBusiness("animal_not_found")
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes > maxDuration {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// 2. No bookings in the past
	// --------------------------------------------------
	start := req.StartTime
	if start.Before(now()) {
		return nil, httperr.ErrBusiness("appointment_in_past")
	}

	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	// --------------------------------------------------
	// 3. Vet must be available on that weekday
	// --------------------------------------------------
	schedules, err := repo.ListActiveSchedules(ctx, req.VeterinarianID, start.Weekday())
	if err != nil {
		return nil, err
	}

	if !domain.FitsSchedule(schedules, start, end) {
		return nil, httperr.ErrBusiness("outside_availability")
	}

	// --------------------------------------------------
	// 4. No double-booking
	// --------------------------------------------------
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := repo.ListBookedForDay(ctx, req.VeterinarianID, dayStart, dayEnd, excludeID)
	if err != nil {
		return nil, err
	}

	for _, other := range booked {
		if domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
	}

	return &validatedBooking{
		Veterinarian: vet,
		Animal:       animal,
		Start:        start,
		End:          end,
	}, nil
}
