package appointment

import (
	"context"
	"time"

	"github.com/animalcarehq/animalcare-api/internal/cache"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
)

const slotsCacheTTL = 60 * time.Second

// GetSlots lists the free slots of a veterinarian on one date for a given
// appointment duration, stepping through each availability window and
// skipping intervals already booked.
type GetSlots struct {
	repo  domain.Repository
	cache *cache.Cache
}

func NewGetSlots(repo domain.Repository, c *cache.Cache) *GetSlots {
	return &GetSlots{repo: repo, cache: c}
}

func (uc *GetSlots) Execute(
	ctx context.Context,
	in domain.SlotsInput,
) ([]domain.TimeSlot, error) {

	if in.DurationMinutes <= 0 || in.DurationMinutes > domain.MaxDurationMinutes {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	if _, err := uc.repo.GetVeterinarian(ctx, in.VeterinarianID); err != nil {
		return nil, httperr.ErrBusiness("veterinarian_not_found")
	}

	key := cache.SlotsKey(in.VeterinarianID, in.Date.Format("2006-01-02"), in.DurationMinutes)
	var cached []domain.TimeSlot
	if uc.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	schedules, err := uc.repo.ListActiveSchedules(ctx, in.VeterinarianID, in.Date.Weekday())
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, in.Date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListBookedForDay(ctx, in.VeterinarianID, dayStart, dayEnd, 0)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(in.DurationMinutes) * time.Minute
	slots := []domain.TimeSlot{}

	for _, row := range schedules {
		if !row.Active || row.StartTime == "" || row.EndTime == "" {
			continue
		}

		windowStart := atTimeOfDay(in.Date, row.StartTime)
		windowEnd := atTimeOfDay(in.Date, row.EndTime)

		for cur := windowStart; !cur.Add(slotDuration).After(windowEnd); cur = cur.Add(slotDuration) {
			slotStart := cur
			slotEnd := cur.Add(slotDuration)

			conflict := false
			for _, ap := range booked {
				if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, domain.TimeSlot{
					Start: slotStart.Format("15:04"),
					End:   slotEnd.Format("15:04"),
				})
			}
		}
	}

	uc.cache.SetJSON(ctx, key, slots, slotsCacheTTL)

	return slots, nil
}

func atTimeOfDay(ref time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	)
}
