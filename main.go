package main

import (
	"log"
	"math/rand"
	"time"

	"trivia/config"
	"trivia/handlers"
	"trivia/middleware"
	"trivia/models"
	"trivia/routes"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := config.SeedDefaultCategories(db); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	// Initialize storage handle
	store := services.NewTriviaService(db)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(store)
	questionHandler := handlers.NewQuestionHandler(store)
	quizHandler := handlers.NewQuizHandler(store, rand.New(rand.NewSource(time.Now().UnixNano())))

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, categoryHandler, questionHandler, quizHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
