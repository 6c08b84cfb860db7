package db

import (
	"strings"
	"testing"
)

// start_time and end_time migrate as timestamptz; tsrange would fail to
// resolve at DDL time and leave the server without its overlap guard.
func TestOverlapGuardRangesOverTimestamptz(t *testing.T) {
	if !strings.Contains(overlapGuardDDL, "tstzrange(start_time, end_time)") {
		t.Error("overlap guard must range with tstzrange over start_time/end_time")
	}
	if strings.Contains(overlapGuardDDL, " tsrange(") {
		t.Error("tsrange has no timestamptz overload; the constraint would not install")
	}
}

func TestOverlapGuardScope(t *testing.T) {
	if !strings.Contains(overlapGuardDDL, "veterinarian_id WITH =") {
		t.Error("overlap guard must be scoped per veterinarian")
	}
	if !strings.Contains(overlapGuardDDL, "WHERE (status <> 'cancelled')") {
		t.Error("cancelled appointments must not block new bookings")
	}
}
