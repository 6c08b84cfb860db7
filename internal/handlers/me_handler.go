package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/animalcarehq/animalcare-api/internal/middleware"
	"github.com/animalcarehq/animalcare-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}

	if user.VeterinarianID != nil {
		var vet models.Veterinarian
		if err := h.db.First(&vet, *user.VeterinarianID).Error; err == nil {
			resp["veterinarian"] = vet
		}
	}
	if user.ReceptionistID != nil {
		var rec models.Receptionist
		if err := h.db.First(&rec, *user.ReceptionistID).Error; err == nil {
			resp["receptionist"] = rec
		}
	}

	c.JSON(http.StatusOK, gin.H{"user": resp})
}
