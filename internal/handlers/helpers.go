package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/middleware"
)

// businessMessages maps business codes to operator-facing messages.
var businessMessages = map[string]string{
	"veterinarian_not_found":  "Veterinarian not found.",
	"animal_not_found":        "Animal not found.",
	"appointment_not_found":   "Appointment not found.",
	"schedule_not_found":      "Schedule entry not found.",
	"invalid_duration":        "Invalid appointment duration.",
	"invalid_date_or_time":    "Invalid date or time.",
	"appointment_in_past":     "Appointments cannot start in the past.",
	"outside_availability":    "Outside the veterinarian's availability.",
	"time_conflict":           "The veterinarian already has an appointment in that interval.",
	"stale_appointment":       "The appointment was modified by someone else; reload and retry.",
	"invalid_state":           "The appointment is not in a state that allows this operation.",
	"too_few_days":            "A weekly schedule needs at least 3 working days.",
	"schedule_already_exists": "The veterinarian already has an active schedule.",
	"schedule_minimum_days":   "Deleting this day would leave fewer than 3 working days.",
}

// writeBusinessError translates a business rejection into the matching HTTP
// status. Non-business errors fall through to a 500.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request rejected."
	}

	switch code {
	case "veterinarian_not_found", "animal_not_found",
		"appointment_not_found", "schedule_not_found":
		httperr.NotFound(c, code, msg)
	case "time_conflict", "stale_appointment", "schedule_already_exists":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}

// currentUserID returns the authenticated user's id as a nullable pointer
// suited for audit attribution.
func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
