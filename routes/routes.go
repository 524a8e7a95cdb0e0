package routes

import (
	"net/http"

	"trivia/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
) {
	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/categories/:id/questions", categoryHandler.GetQuestionsByCategory)

	router.GET("/questions", questionHandler.GetQuestions)
	router.POST("/questions", questionHandler.CreateQuestion)
	router.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	router.POST("/questions/search", questionHandler.SearchQuestions)

	router.POST("/quizzes", quizHandler.PlayQuiz)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
