package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/httpresp"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type OwnerHandler struct {
	db *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type OwnerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// ======================================================
// CRUD
// ======================================================

func (h *OwnerHandler) Create(c *gin.Context) {
	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid owner payload.")
		return
	}

	owner := models.Owner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Address:   req.Address,
	}

	if err := h.db.Create(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_create_owner", "Could not create the owner.")
		return
	}

	httpresp.Created(c, owner)
}

func (h *OwnerHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Owner{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR phone LIKE ?",
			like, like, like,
		)
	}

	var owners []models.Owner
	if err := q.Order("last_name ASC, first_name ASC").Find(&owners).Error; err != nil {
		httperr.Internal(c, "failed_to_list_owners", "Could not list owners.")
		return
	}

	httpresp.List(c, owners)
}

func (h *OwnerHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var owner models.Owner
	if err := h.db.Preload("Animals").First(&owner, id).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found.")
		return
	}

	httpresp.OK(c, owner)
}

func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, id).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found.")
		return
	}

	var req OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid owner payload.")
		return
	}

	owner.FirstName = req.FirstName
	owner.LastName = req.LastName
	owner.Phone = req.Phone
	owner.Email = strings.ToLower(strings.TrimSpace(req.Email))
	owner.Address = req.Address

	if err := h.db.Save(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_update_owner", "Could not update the owner.")
		return
	}

	httpresp.OK(c, owner)
}

func (h *OwnerHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, id).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found.")
		return
	}

	// An owner with animals on file is part of the clinical record.
	var animals int64
	h.db.Model(&models.Animal{}).Where("owner_id = ?", owner.ID).Count(&animals)
	if animals > 0 {
		httperr.Conflict(c, "owner_has_animals", "Remove or transfer the owner's animals first.")
		return
	}

	if err := h.db.Delete(&owner).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_owner", "Could not delete the owner.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
