package handlers

import (
	"errors"
	"net/http"

	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	Importer *services.Importer
}

// UploadCSV ingests a multipart CSV of transactions. Any malformed row fails
// the whole upload with the generic CSV error; nothing is persisted in that
// case.
func (h *UploadHandler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Error CSV"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Error CSV"})
		return
	}
	defer file.Close()

	if _, err := h.Importer.Import(c.Request.Context(), file); err != nil {
		if errors.Is(err, services.ErrCSV) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Error CSV"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
