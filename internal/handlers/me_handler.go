package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mindspace-care/mindspace-api/internal/middleware"
	"github.com/mindspace-care/mindspace-api/internal/models"
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

	userID, ok := userIDVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	payload := gin.H{
		"user": userPayload(&user),
	}

	// A therapist's own approval status rides along so the dashboard
	// can show application state.
	if user.Role == models.RoleTherapist {
		var th models.Therapist
		if err := h.db.Where("user_id = ?", user.ID).First(&th).Error; err == nil {
			payload["therapist"] = gin.H{
				"id":              th.ID,
				"specialization":  th.Specialization,
				"approval_status": th.ApprovalStatus,
				"active":          th.Active,
			}
		}
	}

	c.JSON(http.StatusOK, payload)
}
