package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/clock"
	"github.com/animalcarehq/animalcare-api/internal/httperr"
	"github.com/animalcarehq/animalcare-api/internal/httpresp"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AnimalHandler struct {
	db  *gorm.DB
	now clock.Clock
}

func NewAnimalHandler(db *gorm.DB, now clock.Clock) *AnimalHandler {
	return &AnimalHandler{db: db, now: now}
}

// ======================================================
// REQUESTS
// ======================================================

type AnimalRequest struct {
	OwnerID        uint     `json:"owner_id" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	Species        string   `json:"species" binding:"required"`
	Breed          string   `json:"breed"`
	DateOfBirth    string   `json:"date_of_birth"` // "2006-01-02"
	Sex            string   `json:"sex"`
	WeightKg       *float64 `json:"weight_kg"`
	ImportantNotes string   `json:"important_notes"`
}

func (r *AnimalRequest) dateOfBirth() (*time.Time, error) {
	if r.DateOfBirth == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", r.DateOfBirth, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ======================================================
// CRUD
// ======================================================

func (h *AnimalHandler) Create(c *gin.Context) {
	var req AnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid animal payload.")
		return
	}

	var owner models.Owner
	if err := h.db.First(&owner, req.OwnerID).Error; err != nil {
		httperr.BadRequest(c, "owner_not_found", "Owner not found.")
		return
	}

	dob, err := req.dateOfBirth()
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date of birth.")
		return
	}

	animal := models.Animal{
		OwnerID:        owner.ID,
		Name:           req.Name,
		Species:        req.Species,
		Breed:          req.Breed,
		DateOfBirth:    dob,
		Sex:            req.Sex,
		WeightKg:       req.WeightKg,
		ImportantNotes: req.ImportantNotes,
	}

	if err := h.db.Create(&animal).Error; err != nil {
		httperr.Internal(c, "failed_to_create_animal", "Could not create the animal.")
		return
	}

	animal.Owner = owner
	httpresp.Created(c, animal)
}

func (h *AnimalHandler) List(c *gin.Context) {
	q := h.db.Preload("Owner")

	if ownerID := c.Query("owner_id"); ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?)", like)
	}

	var animals []models.Animal
	if err := q.Order("name ASC").Find(&animals).Error; err != nil {
		httperr.Internal(c, "failed_to_list_animals", "Could not list animals.")
		return
	}

	httpresp.List(c, animals)
}

func (h *AnimalHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var animal models.Animal
	if err := h.db.Preload("Owner").First(&animal, id).Error; err != nil {
		httperr.NotFound(c, "animal_not_found", "Animal not found.")
		return
	}

	httpresp.OK(c, animal)
}

func (h *AnimalHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var animal models.Animal
	if err := h.db.First(&animal, id).Error; err != nil {
		httperr.NotFound(c, "animal_not_found", "Animal not found.")
		return
	}

	var req AnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid animal payload.")
		return
	}

	if req.OwnerID != animal.OwnerID {
		var owner models.Owner
		if err := h.db.First(&owner, req.OwnerID).Error; err != nil {
			httperr.BadRequest(c, "owner_not_found", "Owner not found.")
			return
		}
	}

	dob, err := req.dateOfBirth()
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date of birth.")
		return
	}

	animal.OwnerID = req.OwnerID
	animal.Name = req.Name
	animal.Species = req.Species
	animal.Breed = req.Breed
	animal.DateOfBirth = dob
	animal.Sex = req.Sex
	animal.WeightKg = req.WeightKg
	animal.ImportantNotes = req.ImportantNotes

	if err := h.db.Save(&animal).Error; err != nil {
		httperr.Internal(c, "failed_to_update_animal", "Could not update the animal.")
		return
	}

	httpresp.OK(c, animal)
}

func (h *AnimalHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var animal models.Animal
	if err := h.db.First(&animal, id).Error; err != nil {
		httperr.NotFound(c, "animal_not_found", "Animal not found.")
		return
	}

	var future int64
	h.db.Model(&models.Appointment{}).
		Where("animal_id = ? AND status = ? AND start_time > ?", animal.ID, "scheduled", h.now()).
		Count(&future)
	if future > 0 {
		httperr.Conflict(c, "animal_has_appointments", "Cancel the animal's future appointments first.")
		return
	}

	if err := h.db.Delete(&animal).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_animal", "Could not delete the animal.")
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
