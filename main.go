package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/DavidRCh56/prisma-api/config"
	"github.com/DavidRCh56/prisma-api/middleware"
	"github.com/DavidRCh56/prisma-api/routes"
	"github.com/DavidRCh56/prisma-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Amounts travel as plain JSON numbers, the format the frontend expects.
	decimal.MarshalJSONWithoutQuotes = true

	db, driver, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	log.Printf("✅ Database connected (%s)", driver)

	if err := config.RunMigrations(db, driver); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := services.NewCategoryService(db).Seed(ctx); err != nil {
		cancel()
		log.Fatal("Failed to seed categories:", err)
	}
	cancel()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	allowedOrigins := []string{
		frontendURL,
		"http://127.0.0.1:5173",
	}

	log.Printf("🌍 CORS: Allowing origins:")
	for _, origin := range allowedOrigins {
		log.Printf("   - %s", origin)
	}

	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestID())

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("📨 %s %s - %d (%v) [%s]",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start), middleware.GetRequestID(c))
	})

	router.Use(middleware.RateLimiter(100, time.Minute))

	root := router.Group("/")
	{
		routes.SetupTransactionRoutes(root, db)
		routes.SetupCategoryRoutes(root, db)
		routes.SetupFixedItemRoutes(root, db)
		routes.SetupGoalRoutes(root, db)
		routes.SetupSummaryRoutes(root, db)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
