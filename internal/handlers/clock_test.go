package handlers

import (
	"testing"
	"time"

	"github.com/animalcarehq/animalcare-api/internal/clock"
)

// The future-appointment guards on delete must compare against the injected
// clock, not the database's wall clock, so tests can pin "future".
func TestHandlersUseInjectedClock(t *testing.T) {
	fixed := time.Date(2026, time.September, 7, 7, 0, 0, 0, time.Local)
	now := clock.Clock(func() time.Time { return fixed })

	if got := NewAnimalHandler(nil, now).now(); !got.Equal(fixed) {
		t.Errorf("animal handler clock = %v, want %v", got, fixed)
	}
	if got := NewVeterinarianHandler(nil, now).now(); !got.Equal(fixed) {
		t.Errorf("veterinarian handler clock = %v, want %v", got, fixed)
	}
}
