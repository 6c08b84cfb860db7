package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
)

func TestGetSlotsFullDay(t *testing.T) {
	repo := newMockRepo()
	uc := NewGetSlots(repo, nil)

	slots, err := uc.Execute(context.Background(), domain.SlotsInput{
		VeterinarianID:  1,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local),
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// 08:00-16:00 in 60 minute steps.
	if len(slots) != 8 {
		t.Fatalf("got %d slots, want 8", len(slots))
	}
	if slots[0].Start != "08:00" || slots[0].End != "09:00" {
		t.Errorf("first slot = %+v", slots[0])
	}
	if slots[7].Start != "15:00" || slots[7].End != "16:00" {
		t.Errorf("last slot = %+v", slots[7])
	}
}

func TestGetSlotsSkipsBooked(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	uc := NewGetSlots(repo, nil)

	slots, err := uc.Execute(context.Background(), domain.SlotsInput{
		VeterinarianID:  1,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local),
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, s := range slots {
		if s.Start == "09:00" {
			t.Error("booked 09:00 slot should be skipped")
		}
	}
	if len(slots) != 7 {
		t.Errorf("got %d slots, want 7", len(slots))
	}
}

func TestGetSlotsNoScheduleDay(t *testing.T) {
	repo := newMockRepo()
	uc := NewGetSlots(repo, nil)

	// 2026-09-08 is a Tuesday; the fixture vet only works Mondays.
	slots, err := uc.Execute(context.Background(), domain.SlotsInput{
		VeterinarianID:  1,
		Date:            time.Date(2026, 9, 8, 0, 0, 0, 0, time.Local),
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots, want 0", len(slots))
	}
}

func TestGetSlotsInvalidDuration(t *testing.T) {
	repo := newMockRepo()
	uc := NewGetSlots(repo, nil)

	_, err := uc.Execute(context.Background(), domain.SlotsInput{
		VeterinarianID:  1,
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local),
		DurationMinutes: 0,
	})
	if !httperr.IsBusiness(err, "invalid_duration") {
		t.Fatalf("err = %v, want invalid_duration", err)
	}
}
