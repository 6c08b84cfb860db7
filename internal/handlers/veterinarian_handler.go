package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/clock"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/httpresp"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type VeterinarianHandler struct {
	db  *gorm.DB
	now clock.Clock
}

func NewVeterinarianHandler(db *gorm.DB, now clock.Clock) *VeterinarianHandler {
	return &VeterinarianHandler{db: db, now: now}
}

// ======================================================
// REQUESTS
// ======================================================

type VeterinarianRequest struct {
	FirstName             string `json:"first_name" binding:"required"`
	LastName              string `json:"last_name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Phone                 string `json:"phone"`
	SpecializationSummary string `json:"specialization_summary"`
	SpecialtyIDs          []uint `json:"specialty_ids"`

	// Optional login credentials. When set on create, a veterinarian
	// account is provisioned alongside the profile.
	Password string `json:"password"`
}

// ======================================================
// CRUD
// ======================================================

func (h *VeterinarianHandler) Create(c *gin.Context) {
	var req VeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid veterinarian payload.")
		return
	}

	specialties, ok := h.loadSpecialties(c, req.SpecialtyIDs)
	if !ok {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	vet := models.Veterinarian{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 email,
		Phone:                 req.Phone,
		SpecializationSummary: req.SpecializationSummary,
		Active:                true,
		Specialties:           specialties,
	}

	if err := h.db.Create(&vet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_veterinarian", "Could not create the veterinarian.")
		return
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Could not provision the account.")
			return
		}

		user := models.User{
			Name:           vet.FirstName + " " + vet.LastName,
			Email:          email,
			PasswordHash:   string(hashed),
			Role:           "veterinarian",
			VeterinarianID: &vet.ID,
		}
		if err := h.db.Create(&user).Error; err != nil {
			httperr.Internal(c, "failed_to_create_user", "Could not provision the account.")
			return
		}
	}

	httpresp.Created(c, vet)
}

func (h *VeterinarianHandler) List(c *gin.Context) {
	q := h.db.Preload("Specialties")

	if c.Query("include_inactive") != "true" {
		q = q.Where("active = ?", true)
	}

	var vets []models.Veterinarian
	if err := q.Order("last_name ASC, first_name ASC").Find(&vets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_veterinarians", "Could not list veterinarians.")
		return
	}

	httpresp.List(c, vets)
}

func (h *VeterinarianHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "vetId")
	if !ok {
		return
	}

	var vet models.Veterinarian
	if err := h.db.Preload("Specialties").First(&vet, id).Error; err != nil {
		httperr.NotFound(c, "veterinarian_not_found", "Veterinarian not found.")
		return
	}

	httpresp.OK(c, vet)
}

func (h *VeterinarianHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "vetId")
	if !ok {
		return
	}

	var vet models.Veterinarian
	if err := h.db.Preload("Specialties").First(&vet, id).Error; err != nil {
		httperr.NotFound(c, "veterinarian_not_found", "Veterinarian not found.")
		return
	}

	var req VeterinarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid veterinarian payload.")
		return
	}

	specialties, ok := h.loadSpecialties(c, req.SpecialtyIDs)
	if !ok {
		return
	}

	vet.FirstName = req.FirstName
	vet.LastName = req.LastName
	vet.Email = strings.ToLower(strings.TrimSpace(req.Email))
	vet.Phone = req.Phone
	vet.SpecializationSummary = req.SpecializationSummary

	if err := h.db.Save(&vet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_veterinarian", "Could not update the veterinarian.")
		return
	}

	// Replace the specialty set as a whole.
	if err := h.db.Model(&vet).Association("Specialties").Replace(specialties); err != nil {
		httperr.Internal(c, "failed_to_update_specialties", "Could not update specialties.")
		return
	}

	vet.Specialties = specialties
	httpresp.OK(c, vet)
}

// Delete disables a veterinarian instead of removing the row when future
// appointments exist; history must keep pointing at a real profile.
func (h *VeterinarianHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "vetId")
	if !ok {
		return
	}

	var vet models.Veterinarian
	if err := h.db.First(&vet, id).Error; err != nil {
		httperr.NotFound(c, "veterinarian_not_found", "Veterinarian not found.")
		return
	}

	var future int64
	h.db.Model(&models.Appointment{}).
		Where("veterinarian_id = ? AND status = ? AND start_time > ?", vet.ID, "scheduled", h.now()).
		Count(&future)
	if future > 0 {
		httperr.Conflict(c, "veterinarian_has_appointments",
			"The veterinarian has future appointments; reschedule or cancel them first.")
		return
	}

	var past int64
	h.db.Model(&models.Appointment{}).
		Where("veterinarian_id = ?", vet.ID).
		Count(&past)

	if past > 0 {
		vet.Active = false
		if err := h.db.Save(&vet).Error; err != nil {
			httperr.Internal(c, "failed_to_disable_veterinarian", "Could not disable the veterinarian.")
			return
		}
		c.JSON(200, gin.H{"status": "disabled"})
		return
	}

	if err := h.db.Select("Specialties").Delete(&vet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_veterinarian", "Could not delete the veterinarian.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

func (h *VeterinarianHandler) loadSpecialties(c *gin.Context, ids []uint) ([]models.Specialty, bool) {
	if len(ids) == 0 {
		return []models.Specialty{}, true
	}

	var specialties []models.Specialty
	if err := h.db.Where("id IN ?", ids).Find(&specialties).Error; err != nil {
		httperr.Internal(c, "failed_to_load_specialties", "Could not load specialties.")
		return nil, false
	}
	if len(specialties) != len(ids) {
		httperr.BadRequest(c, "specialty_not_found", "One or more specialties do not exist.")
		return nil, false
	}
	return specialties, true
}
