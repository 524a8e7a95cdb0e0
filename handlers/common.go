package handlers

import (
	"strconv"

	"trivia/models"

	"github.com/gin-gonic/gin"
)

const questionsPerPage = 10

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	400: "Bad Request",
	404: "Resource Not Found",
	422: "Unprocessable Entity",
}

func abortWithError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: errorMessages[code],
	})
}

// pageParam reads the 1-based page index from the query string. A missing
// or unparsable value falls back to page 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// paginate slices an id-ordered result set into the requested page.
// Pages past the end come back empty; callers decide whether that is an
// error.
func paginate(page int, questions []models.Question) []models.Question {
	current := []models.Question{}
	if page < 1 {
		return current
	}
	start := (page - 1) * questionsPerPage
	if start >= len(questions) {
		return current
	}
	end := start + questionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return append(current, questions[start:end]...)
}

func categoriesMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, category := range categories {
		m[category.ID] = category.Type
	}
	return m
}
