package handlers

import (
	"errors"
	"net/http"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-gonic/gin"
)

type FixedItemHandler struct {
	FixedItems *services.FixedItemService
}

func (h *FixedItemHandler) ListFixedItems(c *gin.Context) {
	items, err := h.FixedItems.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fixed items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *FixedItemHandler) CreateFixedItem(c *gin.Context) {
	var req models.CreateFixedItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.FixedItems.Create(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fixed item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "created"})
}

func (h *FixedItemHandler) DeleteFixedItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.FixedItems.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fixed item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

// ApplyFixedItems imports every fixed item into the given month, once.
func (h *FixedItemHandler) ApplyFixedItems(c *gin.Context) {
	month := c.Param("month")

	if err := h.FixedItems.Apply(c.Request.Context(), month); err != nil {
		if errors.Is(err, services.ErrFixedAlreadyApplied) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Fijos ya importados este mes"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply fixed items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "applied"})
}
