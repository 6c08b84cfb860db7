package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/animalcarehq/animalcare-api/internal/domain/schedule"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// MOCK REPOSITORY
// ======================================================

type mockScheduleRepo struct {
	vets map[uint]*models.Veterinarian
	rows map[uint]*models.VetSchedule

	nextID      uint
	createCalls int
	deleteCalls int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{
		vets: map[uint]*models.Veterinarian{
			1: {ID: 1, FirstName: "Ana", LastName: "Souza", Active: true},
		},
		rows:   map[uint]*models.VetSchedule{},
		nextID: 1,
	}
}

func (m *mockScheduleRepo) seedDays(vetID uint, days ...time.Weekday) {
	for _, d := range days {
		m.rows[m.nextID] = &models.VetSchedule{
			ID:             m.nextID,
			VeterinarianID: vetID,
			Weekday:        int(d),
			StartTime:      domain.CanonicalStart,
			EndTime:        domain.CanonicalEnd,
			Active:         true,
		}
		m.nextID++
	}
}

func (m *mockScheduleRepo) GetVeterinarian(_ context.Context, id uint) (*models.Veterinarian, error) {
	if v, ok := m.vets[id]; ok {
		return v, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockScheduleRepo) GetSchedule(_ context.Context, id uint) (*models.VetSchedule, error) {
	if row, ok := m.rows[id]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockScheduleRepo) ListActive(_ context.Context, vetID uint) ([]models.VetSchedule, error) {
	var out []models.VetSchedule
	for _, row := range m.rows {
		if row.VeterinarianID == vetID && row.Active {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) CountActiveExcluding(_ context.Context, vetID uint, excludeID uint) (int64, error) {
	var count int64
	for _, row := range m.rows {
		if row.VeterinarianID == vetID && row.Active && row.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (m *mockScheduleRepo) CreateSchedules(_ context.Context, rows []models.VetSchedule) error {
	m.createCalls++
	for i := range rows {
		rows[i].ID = m.nextID
		cp := rows[i]
		m.rows[m.nextID] = &cp
		m.nextID++
	}
	return nil
}

func (m *mockScheduleRepo) DeleteByDays(_ context.Context, vetID uint, days []time.Weekday) error {
	m.deleteCalls++
	for id, row := range m.rows {
		for _, d := range days {
			if row.VeterinarianID == vetID && row.Weekday == int(d) {
				delete(m.rows, id)
			}
		}
	}
	return nil
}

func (m *mockScheduleRepo) DeleteSchedule(_ context.Context, id uint) error {
	delete(m.rows, id)
	return nil
}

func (m *mockScheduleRepo) DeleteAllForVet(_ context.Context, vetID uint) error {
	for id, row := range m.rows {
		if row.VeterinarianID == vetID {
			delete(m.rows, id)
		}
	}
	return nil
}

var _ domain.Repository = (*mockScheduleRepo)(nil)

// ======================================================
// CREATE
// ======================================================

func TestCreateWeekly(t *testing.T) {
	repo := newMockScheduleRepo()
	uc := NewCreateWeekly(repo, nil, nil)

	rows, err := uc.Execute(
		context.Background(), 1,
		[]time.Weekday{time.Wednesday, time.Monday, time.Friday},
		nil,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for _, row := range rows {
		if row.StartTime != domain.CanonicalStart || row.EndTime != domain.CanonicalEnd {
			t.Errorf("row %d has window %s-%s, want canonical", row.Weekday, row.StartTime, row.EndTime)
		}
		if !row.Active {
			t.Errorf("row %d should be active", row.Weekday)
		}
	}

	// Selection comes back sorted.
	if rows[0].Weekday != int(time.Monday) || rows[2].Weekday != int(time.Friday) {
		t.Errorf("rows not sorted by weekday: %+v", rows)
	}
}

func TestCreateWeeklyDeduplicatesDays(t *testing.T) {
	repo := newMockScheduleRepo()
	uc := NewCreateWeekly(repo, nil, nil)

	rows, err := uc.Execute(
		context.Background(), 1,
		[]time.Weekday{time.Monday, time.Monday, time.Tuesday, time.Wednesday},
		nil,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
}

func TestCreateWeeklyTooFewDays(t *testing.T) {
	repo := newMockScheduleRepo()
	uc := NewCreateWeekly(repo, nil, nil)

	_, err := uc.Execute(
		context.Background(), 1,
		[]time.Weekday{time.Monday, time.Tuesday},
		nil,
	)
	if !httperr.IsBusiness(err, "too_few_days") {
		t.Fatalf("err = %v, want too_few_days", err)
	}

	// Duplicates do not count towards the minimum.
	_, err = uc.Execute(
		context.Background(), 1,
		[]time.Weekday{time.Monday, time.Monday, time.Tuesday},
		nil,
	)
	if !httperr.IsBusiness(err, "too_few_days") {
		t.Fatalf("err = %v, want too_few_days", err)
	}

	// A rejected create writes nothing.
	if repo.createCalls != 0 {
		t.Errorf("create calls = %d, want 0", repo.createCalls)
	}
	count, _ := repo.CountActiveExcluding(context.Background(), 1, 0)
	if count != 0 {
		t.Errorf("rows = %d, want 0 (no partial schedule)", count)
	}
}

func TestCreateWeeklyAlreadyExists(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.seedDays(1, time.Monday, time.Tuesday, time.Wednesday)

	uc := NewCreateWeekly(repo, nil, nil)

	_, err := uc.Execute(
		context.Background(), 1,
		[]time.Weekday{time.Thursday, time.Friday, time.Saturday},
		nil,
	)
	if !httperr.IsBusiness(err, "schedule_already_exists") {
		t.Fatalf("err = %v, want schedule_already_exists", err)
	}
}

func TestCreateWeeklyUnknownVet(t *testing.T) {
	repo := newMockScheduleRepo()
	uc := NewCreateWeekly(repo, nil, nil)

	_, err := uc.Execute(
		context.Background(), 99,
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday},
		nil,
	)
	if !httperr.IsBusiness(err, "veterinarian_not_found") {
		t.Fatalf("err = %v, want veterinarian_not_found", err)
	}
}

// ======================================================
// REPLACE
// ======================================================

func TestReplaceWeeklyDiff(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.seedDays(1, time.Monday, time.Wednesday, time.Friday)

	uc := NewReplaceWeekly(repo, nil, nil)

	err := uc.Execute(
		context.Background(), 1,
		[]time.Weekday{time.Monday, time.Tuesday, time.Friday},
		[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		nil,
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	remaining, _ := repo.ListActive(context.Background(), 1)
	days := map[int]bool{}
	for _, row := range remaining {
		days[row.Weekday] = true
	}

	if !days[int(time.Tuesday)] {
		t.Error("Tuesday should have been added")
	}
	if days[int(time.Wednesday)] {
		t.Error("Wednesday should have been removed")
	}
	if !days[int(time.Monday)] || !days[int(time.Friday)] {
		t.Error("unchanged days should remain")
	}
}

// A replace with the same selection must not touch storage at all.
func TestReplaceWeeklyNoChanges(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.seedDays(1, time.Monday, time.Wednesday, time.Friday)

	uc := NewReplaceWeekly(repo, nil, nil)

	days := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if err := uc.Execute(context.Background(), 1, days, days, nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if repo.createCalls != 0 || repo.deleteCalls != 0 {
		t.Errorf("create calls %d delete calls %d, want 0 and 0", repo.createCalls, repo.deleteCalls)
	}
}

func TestReplaceWeeklyTooFewDays(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.seedDays(1, time.Monday, time.Wednesday, time.Friday)

	uc := NewReplaceWeekly(repo, nil, nil)

	err := uc.Execute(
		context.Background(), 1,
		[]time.Weekday{time.Monday, time.Friday},
		[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		nil,
	)
	if !httperr.IsBusiness(err, "too_few_days") {
		t.Fatalf("err = %v, want too_few_days", err)
	}
}

// ======================================================
// DELETE DAY
// ======================================================

func TestDeleteDayKeepsMinimum(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.seedDays(1, time.Monday, time.Tuesday, time.Wednesday)

	uc := NewDeleteDay(repo, nil, nil)

	err := uc.Execute(context.Background(), 1, nil)
	if !httperr.IsBusiness(err, "schedule_minimum_days") {
		t.Fatalf("err = %v, want schedule_minimum_days", err)
	}

	count, _ := repo.CountActiveExcluding(context.Background(), 1, 0)
	if count != 3 {
		t.Errorf("rows = %d, want 3 (nothing deleted)", count)
	}
}

func TestDeleteDayAboveMinimum(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.seedDays(1, time.Monday, time.Tuesday, time.Wednesday, time.Thursday)

	uc := NewDeleteDay(repo, nil, nil)

	if err := uc.Execute(context.Background(), 1, nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	count, _ := repo.CountActiveExcluding(context.Background(), 1, 0)
	if count != 3 {
		t.Errorf("rows = %d, want 3", count)
	}
}

func TestDeleteDayNotFound(t *testing.T) {
	repo := newMockScheduleRepo()
	uc := NewDeleteDay(repo, nil, nil)

	err := uc.Execute(context.Background(), 42, nil)
	if !httperr.IsBusiness(err, "schedule_not_found") {
		t.Fatalf("err = %v, want schedule_not_found", err)
	}
}

// ======================================================
// DELETE ALL
// ======================================================

func TestDeleteAll(t *testing.T) {
	repo := newMockScheduleRepo()
	repo.seedDays(1, time.Monday, time.Tuesday, time.Wednesday)

	uc := NewDeleteAll(repo, nil, nil)

	if err := uc.Execute(context.Background(), 1, nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	count, _ := repo.CountActiveExcluding(context.Background(), 1, 0)
	if count != 0 {
		t.Errorf("rows = %d, want 0", count)
	}
}
