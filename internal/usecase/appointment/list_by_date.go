package appointment

import (
	"context"
	"time"

	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/dto"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

// Execute lists appointments on one calendar date. vetID == 0 means the whole
// clinic; search filters on animal or owner name.
func (uc *ListByDate) Execute(
	ctx context.Context,
	vetID uint,
	date time.Time,
	search string,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, vetID, start, end, search)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			Reference:        ap.Reference,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			DurationMinutes:  ap.DurationMinutes,
			Status:           ap.Status,
			Reason:           ap.Reason,
			AnimalName:       ap.Animal.Name,
			OwnerName:        ap.Animal.Owner.FirstName + " " + ap.Animal.Owner.LastName,
			VeterinarianName: ap.Veterinarian.FirstName + " " + ap.Veterinarian.LastName,
		})
	}
	return out
}
