package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/httpresp"
	"github.com/animalcarehq/animalcare-api/internal/middleware"
	"github.com/animalcarehq/animalcare-api/internal/models"
	uc "github.com/animalcarehq/animalcare-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB

	createWeekly  *uc.CreateWeekly
	replaceWeekly *uc.ReplaceWeekly
	deleteDay     *uc.DeleteDay
	deleteAll     *uc.DeleteAll
}

func NewScheduleHandler(
	db *gorm.DB,
	createWeekly *uc.CreateWeekly,
	replaceWeekly *uc.ReplaceWeekly,
	deleteDay *uc.DeleteDay,
	deleteAll *uc.DeleteAll,
) *ScheduleHandler {
	return &ScheduleHandler{
		db:            db,
		createWeekly:  createWeekly,
		replaceWeekly: replaceWeekly,
		deleteDay:     deleteDay,
		deleteAll:     deleteAll,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	Days []int `json:"days" binding:"required"`
}

type ReplaceScheduleRequest struct {
	Days []int `json:"days" binding:"required"`

	// The day selection the editor was loaded with; the replace is
	// applied as the difference between the two.
	OriginalDays []int `json:"original_days"`
}

func toWeekdays(days []int) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}

// ======================================================
// WRITE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	vetID, ok := paramID(c, "vetId")
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	rows, err := h.createWeekly.Execute(
		c.Request.Context(), vetID, toWeekdays(req.Days), currentUserID(c),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, rows)
}

func (h *ScheduleHandler) ReplaceAll(c *gin.Context) {
	vetID, ok := paramID(c, "vetId")
	if !ok {
		return
	}

	var req ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	err := h.replaceWeekly.Execute(
		c.Request.Context(),
		vetID,
		toWeekdays(req.Days),
		toWeekdays(req.OriginalDays),
		currentUserID(c),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) DeleteDay(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteDay.Execute(c.Request.Context(), id, currentUserID(c)); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) DeleteAll(c *gin.Context) {
	vetID, ok := paramID(c, "vetId")
	if !ok {
		return
	}

	if err := h.deleteAll.Execute(c.Request.Context(), vetID, currentUserID(c)); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

// ======================================================
// READ
// ======================================================

func (h *ScheduleHandler) ListForVet(c *gin.Context) {
	vetID, ok := paramID(c, "vetId")
	if !ok {
		return
	}

	var rows []models.VetSchedule
	if err := h.db.
		Where("veterinarian_id = ? AND active = ?", vetID, true).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.List(c, rows)
}

// MySchedule shows the authenticated veterinarian's own weekly schedule.
func (h *ScheduleHandler) MySchedule(c *gin.Context) {
	vetIDVal, exists := c.Get(middleware.ContextVeterinarianID)
	if !exists {
		httperr.Forbidden(c, "not_a_veterinarian", "Only veterinarian accounts have a schedule.")
		return
	}
	vetID := vetIDVal.(uint)

	var rows []models.VetSchedule
	if err := h.db.
		Where("veterinarian_id = ? AND active = ?", vetID, true).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.List(c, rows)
}
