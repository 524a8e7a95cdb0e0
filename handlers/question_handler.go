package handlers

import (
	"net/http"
	"strconv"

	"trivia/models"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	store services.Store
}

func NewQuestionHandler(store services.Store) *QuestionHandler {
	return &QuestionHandler{store: store}
}

type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.store.ListQuestions()
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	currentPage := paginate(pageParam(c), questions)
	if len(currentPage) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	categories, err := h.store.ListCategories()
	if err != nil || len(categories) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       currentPage,
		"total_questions": len(questions),
		"categories":      categoriesMap(categories),
	})
}

// CreateQuestion rejects any missing or zero field with 422. The store
// never sees a partial question.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	if req.Question == "" || req.Answer == "" || req.Difficulty == 0 || req.Category == 0 {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	}

	if err := h.store.InsertQuestion(&question); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      question.ID,
		"created": question.Question,
		"message": "Question successfully created!",
	})
}

// DeleteQuestion is deliberately not idempotent: the first delete of an
// id returns 200, a repeat returns 422 because the row is already gone.
// An unparsable id never reaches the store and reads as a missing route.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	question, err := h.store.FindQuestion(uint(id))
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	if err := h.store.DeleteQuestion(question); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": question.ID,
	})
}

func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	if req.SearchTerm == "" {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	matches, err := h.store.SearchQuestions(req.SearchTerm)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}
	if len(matches) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       paginate(pageParam(c), matches),
		"total_questions": len(matches),
	})
}
