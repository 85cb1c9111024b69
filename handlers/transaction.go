package handlers

import (
	"net/http"
	"strconv"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	Transactions *services.TransactionService
}

// ListTransactions returns every stored transaction
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.Transactions.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction inserts one transaction from the request body
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Transactions.Create(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// DeleteTransaction removes a transaction; deleting an absent id still succeeds
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Transactions.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

// ListMonths returns the distinct year-months present, newest first
func (h *TransactionHandler) ListMonths(c *gin.Context) {
	months, err := h.Transactions.Months(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch months"})
		return
	}
	c.JSON(http.StatusOK, months)
}

// parseID reads the :id path parameter, replying 400 itself on garbage.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
