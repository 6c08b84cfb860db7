package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// MOCK REPOSITORY
// ======================================================

type mockRepo struct {
	vets      map[uint]*models.Veterinarian
	animals   map[uint]*models.Animal
	schedules []models.VetSchedule
	stored    map[uint]*models.Appointment

	created []*models.Appointment
	updated []*models.Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		vets: map[uint]*models.Veterinarian{
			1: {ID: 1, FirstName: "Ana", LastName: "Souza", Active: true},
		},
		animals: map[uint]*models.Animal{
			1: {ID: 1, Name: "Rex", OwnerID: 1, Owner: models.Owner{
				ID: 1, FirstName: "Carlos", LastName: "Lima", Email: "carlos@example.com",
			}},
		},
		schedules: []models.VetSchedule{
			{ID: 1, VeterinarianID: 1, Weekday: 1, StartTime: "08:00", EndTime: "16:00", Active: true},
		},
		stored: map[uint]*models.Appointment{},
	}
}

func (m *mockRepo) GetVeterinarian(_ context.Context, id uint) (*models.Veterinarian, error) {
	if v, ok := m.vets[id]; ok {
		return v, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) GetAnimal(_ context.Context, id uint) (*models.Animal, error) {
	if a, ok := m.animals[id]; ok {
		return a, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) ListActiveSchedules(_ context.Context, vetID uint, weekday time.Weekday) ([]models.VetSchedule, error) {
	var out []models.VetSchedule
	for _, row := range m.schedules {
		if row.VeterinarianID == vetID && row.Weekday == int(weekday) && row.Active {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockRepo) ListBookedForDay(_ context.Context, vetID uint, dayStart, dayEnd time.Time, excludeID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.stored {
		if ap.VeterinarianID != vetID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if excludeID > 0 && ap.ID == excludeID {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (m *mockRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(m.stored) + 1)
	cp := *ap
	m.stored[ap.ID] = &cp
	m.created = append(m.created, ap)
	return nil
}

func (m *mockRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := m.stored[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	current, ok := m.stored[ap.ID]
	if !ok || current.Version != ap.Version {
		return httperr.ErrBusiness("stale_appointment")
	}

	ap.Version++
	cp := *ap
	m.stored[ap.ID] = &cp
	m.updated = append(m.updated, ap)
	return nil
}

func (m *mockRepo) DeleteAppointment(_ context.Context, id uint) error {
	delete(m.stored, id)
	return nil
}

func (m *mockRepo) ListAppointmentsForPeriod(_ context.Context, vetID uint, start, end time.Time, _ string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.stored {
		if vetID > 0 && ap.VeterinarianID != vetID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*mockRepo)(nil)

// ======================================================
// FIXTURES
// ======================================================

// 2026-09-07 is a Monday.
func fixedNow() time.Time {
	return time.Date(2026, 9, 7, 7, 0, 0, 0, time.Local)
}

func newBook(repo *mockRepo) *Book {
	return NewBook(repo, nil, nil, nil, fixedNow, 480)
}

func seedAppointment(repo *mockRepo, id uint, hour, min, durationMin int) {
	start := time.Date(2026, 9, 7, hour, min, 0, 0, time.Local)
	repo.stored[id] = &models.Appointment{
		ID:              id,
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMin) * time.Minute),
		DurationMinutes: durationMin,
		Status:          string(domain.StatusScheduled),
		Version:         1,
	}
}

// ======================================================
// BOOK
// ======================================================

func TestBookSuccess(t *testing.T) {
	repo := newMockRepo()

	ap, err := newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 09:00",
		DurationMinutes: 60,
		Reason:          "Annual checkup",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if ap.Status != string(domain.StatusScheduled) {
		t.Errorf("status = %q, want scheduled", ap.Status)
	}
	if ap.Reference == "" {
		t.Error("reference should be assigned")
	}
	if ap.Version != 1 {
		t.Errorf("version = %d, want 1", ap.Version)
	}

	wantEnd := time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local)
	if !ap.EndTime.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", ap.EndTime, wantEnd)
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d appointments, want 1", len(repo.created))
	}
}

func TestBookBackToBackAllowed(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	// Starts exactly when the existing booking ends.
	_, err := newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 10:00",
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("back-to-back booking rejected: %v", err)
	}
}

func TestBookConflict(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 09:30",
		DurationMinutes: 60,
	})
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("err = %v, want time_conflict", err)
	}
}

func TestBookCancelledDoesNotBlock(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)
	repo.stored[1].Status = string(domain.StatusCancelled)

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 09:00",
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("cancelled appointment should not block: %v", err)
	}
}

func TestBookOutsideAvailability(t *testing.T) {
	repo := newMockRepo()

	cases := []struct {
		name     string
		start    string
		duration int
	}{
		{"before window", "2026-09-07 07:00", 30},
		{"runs past window end", "2026-09-07 15:30", 60},
		{"day without schedule", "2026-09-08 09:00", 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newBook(repo).Execute(context.Background(), BookInput{
				AnimalID:        1,
				VeterinarianID:  1,
				StartTime:       tc.start,
				DurationMinutes: tc.duration,
			})
			if !httperr.IsBusiness(err, "outside_availability") {
				t.Fatalf("err = %v, want outside_availability", err)
			}
		})
	}
}

func TestBookInPast(t *testing.T) {
	repo := newMockRepo()

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-08-31 09:00",
		DurationMinutes: 30,
	})
	if !httperr.IsBusiness(err, "appointment_in_past") {
		t.Fatalf("err = %v, want appointment_in_past", err)
	}
}

func TestBookInvalidDuration(t *testing.T) {
	repo := newMockRepo()

	for _, duration := range []int{0, -15, 481} {
		_, err := newBook(repo).Execute(context.Background(), BookInput{
			AnimalID:        1,
			VeterinarianID:  1,
			StartTime:       "2026-09-07 09:00",
			DurationMinutes: duration,
		})
		if !httperr.IsBusiness(err, "invalid_duration") {
			t.Fatalf("duration %d: err = %v, want invalid_duration", duration, err)
		}
	}
}

func TestBookUnknownReferences(t *testing.T) {
	repo := newMockRepo()

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        1,
		VeterinarianID:  99,
		StartTime:       "2026-09-07 09:00",
		DurationMinutes: 30,
	})
	if !httperr.IsBusiness(err, "veterinarian_not_found") {
		t.Fatalf("err = %v, want veterinarian_not_found", err)
	}

	_, err = newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        99,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 09:00",
		DurationMinutes: 30,
	})
	if !httperr.IsBusiness(err, "animal_not_found") {
		t.Fatalf("err = %v, want animal_not_found", err)
	}
}

func TestBookBadTimestamp(t *testing.T) {
	repo := newMockRepo()

	_, err := newBook(repo).Execute(context.Background(), BookInput{
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "07/09/2026 09:00",
		DurationMinutes: 30,
	})
	if !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("err = %v, want invalid_date_or_time", err)
	}
}

// ======================================================
// RESCHEDULE
// ======================================================

func newReschedule(repo *mockRepo) *Reschedule {
	return NewReschedule(repo, nil, nil, fixedNow, 480)
}

func TestRescheduleIgnoresOwnSlot(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	// Shift the 09:00 booking to 09:30; the old interval overlaps the new
	// one but belongs to the row being edited.
	ap, err := newReschedule(repo).Execute(context.Background(), RescheduleInput{
		AppointmentID:   1,
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 09:30",
		DurationMinutes: 60,
		Version:         1,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	wantStart := time.Date(2026, 9, 7, 9, 30, 0, 0, time.Local)
	if !ap.StartTime.Equal(wantStart) {
		t.Errorf("start = %v, want %v", ap.StartTime, wantStart)
	}
	if ap.Version != 2 {
		t.Errorf("version = %d, want 2", ap.Version)
	}
}

func TestRescheduleConflictsWithOthers(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)
	seedAppointment(repo, 2, 11, 0, 60)

	_, err := newReschedule(repo).Execute(context.Background(), RescheduleInput{
		AppointmentID:   1,
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 11:30",
		DurationMinutes: 60,
		Version:         1,
	})
	if !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("err = %v, want time_conflict", err)
	}
}

func TestRescheduleStaleVersion(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)
	repo.stored[1].Version = 3

	_, err := newReschedule(repo).Execute(context.Background(), RescheduleInput{
		AppointmentID:   1,
		AnimalID:        1,
		VeterinarianID:  1,
		StartTime:       "2026-09-07 13:00",
		DurationMinutes: 60,
		Version:         1,
	})
	if !httperr.IsBusiness(err, "stale_appointment") {
		t.Fatalf("err = %v, want stale_appointment", err)
	}
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func TestCancelSetsTimestamp(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	uc := NewCancelAppointment(repo, nil, nil, nil, fixedNow)

	ap, err := uc.Execute(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if ap.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(fixedNow()) {
		t.Errorf("cancelled_at = %v, want %v", ap.CancelledAt, fixedNow())
	}
}

func TestCancelTwiceRejected(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	uc := NewCancelAppointment(repo, nil, nil, nil, fixedNow)

	if _, err := uc.Execute(context.Background(), 1, nil); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if _, err := uc.Execute(context.Background(), 1, nil); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("second cancel: err = %v, want invalid_state", err)
	}
}

func TestCompleteStoresClinicalNote(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	uc := NewCompleteAppointment(repo, nil, fixedNow)

	ap, err := uc.Execute(context.Background(), 1, "Vaccinated, next dose in 30 days.", nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if ap.Status != string(domain.StatusCompleted) {
		t.Errorf("status = %q, want completed", ap.Status)
	}
	if ap.ClinicalNote == "" {
		t.Error("clinical note should be stored")
	}
	if ap.CompletedAt == nil {
		t.Error("completed_at should be set")
	}
}

func TestNoShow(t *testing.T) {
	repo := newMockRepo()
	seedAppointment(repo, 1, 9, 0, 60)

	uc := NewMarkNoShow(repo, nil)

	ap, err := uc.Execute(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ap.Status != string(domain.StatusNoShow) {
		t.Errorf("status = %q, want no_show", ap.Status)
	}
}
