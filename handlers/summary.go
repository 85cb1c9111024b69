package handlers

import (
	"net/http"

	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	Summary *services.SummaryService
}

// GetSummary aggregates one calendar year: income, expense, savings and the
// per-category expense breakdown.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.Summary.Yearly(c.Request.Context(), c.Param("year"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
