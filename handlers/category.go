package handlers

import (
	"errors"
	"net/http"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	Categories *services.CategoryService
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory inserts a category; a duplicate name is a 409, not a server
// error.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Categories.Create(c.Request.Context(), req); err != nil {
		if errors.Is(err, services.ErrDuplicateCategory) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "created"})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Categories.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}
