package handlers

import (
	"net/http"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	Goals *services.GoalService
}

// ListGoals returns the stored goals, zero or one under correct usage
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.Goals.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// CreateGoal replaces any existing goal with the one in the request body
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Goals.Replace(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "created"})
}
