package routes

import (
	"database/sql"

	"github.com/DavidRCh56/prisma-api/handlers"
	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-gonic/gin"
)

// SetupTransactionRoutes sets up transaction CRUD, month enumeration and the
// CSV upload.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.TransactionHandler{Transactions: services.NewTransactionService(db)}
	upload := &handlers.UploadHandler{Importer: services.NewImporter(db)}

	rg.GET("/transactions/", h.ListTransactions)
	rg.POST("/transactions/", h.CreateTransaction)
	rg.DELETE("/transactions/:id", h.DeleteTransaction)

	rg.GET("/months/", h.ListMonths)

	rg.POST("/upload-csv/", upload.UploadCSV)
}

// SetupCategoryRoutes sets up category CRUD.
func SetupCategoryRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.CategoryHandler{Categories: services.NewCategoryService(db)}

	rg.GET("/categories/", h.ListCategories)
	rg.POST("/categories/", h.CreateCategory)
	rg.DELETE("/categories/:id", h.DeleteCategory)
}

// SetupFixedItemRoutes sets up fixed-item CRUD and monthly application.
func SetupFixedItemRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.FixedItemHandler{FixedItems: services.NewFixedItemService(db)}

	rg.GET("/fixed/", h.ListFixedItems)
	rg.POST("/fixed/", h.CreateFixedItem)
	rg.DELETE("/fixed/:id", h.DeleteFixedItem)
	rg.POST("/fixed/apply/:month", h.ApplyFixedItems)
}

// SetupGoalRoutes sets up the single-goal endpoints.
func SetupGoalRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.GoalHandler{Goals: services.NewGoalService(db)}

	rg.GET("/goals/", h.ListGoals)
	rg.POST("/goals/", h.CreateGoal)
}

// SetupSummaryRoutes sets up the yearly summary endpoint.
func SetupSummaryRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.SummaryHandler{Summary: services.NewSummaryService(db)}

	rg.GET("/summary/:year", h.GetSummary)
}
