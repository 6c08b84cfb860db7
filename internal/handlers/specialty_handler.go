package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/httpresp"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type SpecialtyHandler struct {
	db *gorm.DB
}

func NewSpecialtyHandler(db *gorm.DB) *SpecialtyHandler {
	return &SpecialtyHandler{db: db}
}

type SpecialtyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid specialty payload.")
		return
	}

	var count int64
	h.db.Model(&models.Specialty{}).Where("LOWER(name) = LOWER(?)", req.Name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "specialty_already_exists", "A specialty with that name already exists.")
		return
	}

	sp := models.Specialty{Name: req.Name, Description: req.Description}
	if err := h.db.Create(&sp).Error; err != nil {
		httperr.Internal(c, "failed_to_create_specialty", "Could not create the specialty.")
		return
	}

	httpresp.Created(c, sp)
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	var specialties []models.Specialty
	if err := h.db.Order("name ASC").Find(&specialties).Error; err != nil {
		httperr.Internal(c, "failed_to_list_specialties", "Could not list specialties.")
		return
	}

	httpresp.List(c, specialties)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var sp models.Specialty
	if err := h.db.First(&sp, id).Error; err != nil {
		httperr.NotFound(c, "specialty_not_found", "Specialty not found.")
		return
	}

	var req SpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid specialty payload.")
		return
	}

	sp.Name = req.Name
	sp.Description = req.Description

	if err := h.db.Save(&sp).Error; err != nil {
		httperr.Internal(c, "failed_to_update_specialty", "Could not update the specialty.")
		return
	}

	httpresp.OK(c, sp)
}

func (h *SpecialtyHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var sp models.Specialty
	if err := h.db.First(&sp, id).Error; err != nil {
		httperr.NotFound(c, "specialty_not_found", "Specialty not found.")
		return
	}

	if err := h.db.Exec(
		"DELETE FROM veterinarian_specialties WHERE specialty_id = ?", sp.ID,
	).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_specialty", "Could not delete the specialty.")
		return
	}

	if err := h.db.Delete(&sp).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_specialty", "Could not delete the specialty.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
