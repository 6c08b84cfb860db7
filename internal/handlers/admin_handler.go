package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/clock"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db  *gorm.DB
	now clock.Clock
}

func NewAdminHandler(db *gorm.DB, now clock.Clock) *AdminHandler {
	return &AdminHandler{db: db, now: now}
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	now := h.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var owners, animals, vets int64
	h.db.Model(&models.Owner{}).Count(&owners)
	h.db.Model(&models.Animal{}).Count(&animals)
	h.db.Model(&models.Veterinarian{}).Where("active = ?", true).Count(&vets)

	var todayTotal, todayRemaining int64
	h.db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ? AND status <> ?", dayStart, dayEnd, "cancelled").
		Count(&todayTotal)
	h.db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ? AND status = ?", now, dayEnd, "scheduled").
		Count(&todayRemaining)

	var upcomingWeek int64
	h.db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ? AND status = ?", now, now.AddDate(0, 0, 7), "scheduled").
		Count(&upcomingWeek)

	c.JSON(200, gin.H{
		"owners":          owners,
		"animals":         animals,
		"veterinarians":   vets,
		"today_total":     todayTotal,
		"today_remaining": todayRemaining,
		"upcoming_week":   upcomingWeek,
	})
}

// ======================================================
// MONTHLY REPORT
// ======================================================

type vetMonthlyStats struct {
	VeterinarianID uint   `json:"veterinarian_id"`
	Name           string `json:"name"`
	Total          int64  `json:"total"`
	Completed      int64  `json:"completed"`
	Cancelled      int64  `json:"cancelled"`
	NoShow         int64  `json:"no_show"`
}

func (h *AdminHandler) MonthlyReport(c *gin.Context) {
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

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var total int64
	if err := h.db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", start, end).
		Count(&total).Error; err != nil {

		httperr.Internal(c, "report_failed", "Could not build the report.")
		return
	}

	countByStatus := func(status string) int64 {
		var n int64
		h.db.Model(&models.Appointment{}).
			Where("start_time >= ? AND start_time < ? AND status = ?", start, end, status).
			Count(&n)
		return n
	}

	completed := countByStatus("completed")
	cancelled := countByStatus("cancelled")
	noShow := countByStatus("no_show")
	scheduled := countByStatus("scheduled")

	cancellationRate := 0.0
	if total > 0 {
		cancellationRate = float64(cancelled) / float64(total)
	}

	var perVet []vetMonthlyStats
	h.db.Raw(`
		SELECT
			v.id AS veterinarian_id,
			v.first_name || ' ' || v.last_name AS name,
			COUNT(a.id) AS total,
			COUNT(a.id) FILTER (WHERE a.status = 'completed') AS completed,
			COUNT(a.id) FILTER (WHERE a.status = 'cancelled') AS cancelled,
			COUNT(a.id) FILTER (WHERE a.status = 'no_show') AS no_show
		FROM veterinarians v
		LEFT JOIN appointments a
			ON a.veterinarian_id = v.id
			AND a.start_time >= ? AND a.start_time < ?
		GROUP BY v.id, v.first_name, v.last_name
		ORDER BY total DESC
	`, start, end).Scan(&perVet)

	c.JSON(200, gin.H{
		"year":              year,
		"month":             month,
		"total":             total,
		"scheduled":         scheduled,
		"completed":         completed,
		"cancelled":         cancelled,
		"no_show":           noShow,
		"cancellation_rate": cancellationRate,
		"per_veterinarian":  perVet,
	})
}
