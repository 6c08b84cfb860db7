package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/audit"
	"github.com/animalcarehq/animalcare-api/internal/clock"
	domain "github.com/animalcarehq/animalcare-api/internal/domain/appointment"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/httpresp"
	"github.com/animalcarehq/animalcare-api/internal/middleware"
	"github.com/animalcarehq/animalcare-api/internal/models"
	uc "github.com/animalcarehq/animalcare-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	now   clock.Clock

	book        *uc.Book
	reschedule  *uc.Reschedule
	cancel      *uc.CancelAppointment
	complete    *uc.CompleteAppointment
	noShow      *uc.MarkNoShow
	slots       *uc.GetSlots
	listByDate  *uc.ListByDate
	listByMonth *uc.ListByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	auditD *audit.Dispatcher,
	now clock.Clock,
	book *uc.Book,
	reschedule *uc.Reschedule,
	cancel *uc.CancelAppointment,
	complete *uc.CompleteAppointment,
	noShow *uc.MarkNoShow,
	slots *uc.GetSlots,
	listByDate *uc.ListByDate,
	listByMonth *uc.ListByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:          db,
		audit:       auditD,
		now:         now,
		book:        book,
		reschedule:  reschedule,
		cancel:      cancel,
		complete:    complete,
		noShow:      noShow,
		slots:       slots,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	AnimalID        uint   `json:"animal_id" binding:"required"`
	VeterinarianID  uint   `json:"veterinarian_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Reason          string `json:"reason"`
}

type RescheduleAppointmentRequest struct {
	AnimalID        uint   `json:"animal_id" binding:"required"`
	VeterinarianID  uint   `json:"veterinarian_id" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Reason          string `json:"reason"`
	ClinicalNote    string `json:"clinical_note"`
	Version         int    `json:"version" binding:"required"`
}

type CompleteAppointmentRequest struct {
	ClinicalNote string `json:"clinical_note"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), uc.BookInput{
		AnimalID:        req.AnimalID,
		VeterinarianID:  req.VeterinarianID,
		StartTime:       req.Date + " " + req.Time,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
		BookedBy:        currentUserID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), uc.RescheduleInput{
		AppointmentID:   id,
		AnimalID:        req.AnimalID,
		VeterinarianID:  req.VeterinarianID,
		StartTime:       req.Date + " " + req.Time,
		DurationMinutes: req.DurationMinutes,
		Reason:          req.Reason,
		ClinicalNote:    req.ClinicalNote,
		Version:         req.Version,
		UpdatedBy:       currentUserID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req CompleteAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	ap, err := h.complete.Execute(c.Request.Context(), id, req.ClinicalNote, currentUserID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.noShow.Execute(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE (admin only, wired in routes)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete the appointment.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(200, gin.H{"status": "ok"})
}

// ======================================================
// LISTING
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseClinicDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	vetID := queryUint(c, "vet_id")
	search := c.Query("search")

	list, err := h.listByDate.Execute(c.Request.Context(), vetID, date, search)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) Today(c *gin.Context) {
	vetID := queryUint(c, "vet_id")

	list, err := h.listByDate.Execute(c.Request.Context(), vetID, h.now(), c.Query("search"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	vetID := queryUint(c, "vet_id")

	list, err := h.listByMonth.Execute(c.Request.Context(), vetID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}

// MyAppointments lists the authenticated veterinarian's own day.
func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	vetIDVal, exists := c.Get(middleware.ContextVeterinarianID)
	if !exists {
		httperr.Forbidden(c, "not_a_veterinarian", "Only veterinarian accounts have own appointments.")
		return
	}
	vetID := vetIDVal.(uint)

	date := h.now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseClinicDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		date = parsed
	}

	list, err := h.listByDate.Execute(c.Request.Context(), vetID, date, "")
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// FREE SLOTS
// ======================================================

func (h *AppointmentHandler) Slots(c *gin.Context) {
	vetID := queryUint(c, "vet_id")
	if vetID == 0 {
		httperr.BadRequest(c, "missing_vet_id", "vet_id is required.")
		return
	}

	date, err := parseClinicDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Invalid duration.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), domain.SlotsInput{
		VeterinarianID:  vetID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"date":     date.Format("2006-01-02"),
		"duration": duration,
		"slots":    slots,
	})
}

// ======================================================
// HELPERS
// ======================================================

func parseClinicDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func queryUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
