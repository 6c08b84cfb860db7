package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/httpresp"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type ReceptionistHandler struct {
	db *gorm.DB
}

func NewReceptionistHandler(db *gorm.DB) *ReceptionistHandler {
	return &ReceptionistHandler{db: db}
}

type ReceptionistRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`
}

func (h *ReceptionistHandler) Create(c *gin.Context) {
	var req ReceptionistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid receptionist payload.")
		return
	}

	rec := models.Receptionist{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		Active:    true,
	}

	if err := h.db.Create(&rec).Error; err != nil {
		httperr.Internal(c, "failed_to_create_receptionist", "Could not create the receptionist.")
		return
	}

	httpresp.Created(c, rec)
}

func (h *ReceptionistHandler) List(c *gin.Context) {
	var recs []models.Receptionist
	if err := h.db.Order("last_name ASC, first_name ASC").Find(&recs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_receptionists", "Could not list receptionists.")
		return
	}

	httpresp.List(c, recs)
}

func (h *ReceptionistHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rec models.Receptionist
	if err := h.db.First(&rec, id).Error; err != nil {
		httperr.NotFound(c, "receptionist_not_found", "Receptionist not found.")
		return
	}

	httpresp.OK(c, rec)
}

func (h *ReceptionistHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rec models.Receptionist
	if err := h.db.First(&rec, id).Error; err != nil {
		httperr.NotFound(c, "receptionist_not_found", "Receptionist not found.")
		return
	}

	var req ReceptionistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid receptionist payload.")
		return
	}

	rec.FirstName = req.FirstName
	rec.LastName = req.LastName
	rec.Email = strings.ToLower(strings.TrimSpace(req.Email))
	rec.Phone = req.Phone
	if req.Active != nil {
		rec.Active = *req.Active
	}

	if err := h.db.Save(&rec).Error; err != nil {
		httperr.Internal(c, "failed_to_update_receptionist", "Could not update the receptionist.")
		return
	}

	httpresp.OK(c, rec)
}

func (h *ReceptionistHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rec models.Receptionist
	if err := h.db.First(&rec, id).Error; err != nil {
		httperr.NotFound(c, "receptionist_not_found", "Receptionist not found.")
		return
	}

	// Keep the row; accounts and audit entries may reference it.
	rec.Active = false
	if err := h.db.Save(&rec).Error; err != nil {
		httperr.Internal(c, "failed_to_disable_receptionist", "Could not disable the receptionist.")
		return
	}

	c.JSON(200, gin.H{"status": "disabled"})
}
