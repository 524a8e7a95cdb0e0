package handlers

import (
	"net/http"
	"strconv"

	"trivia/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	store services.Store
}

func NewCategoryHandler(store services.Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.store.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	if len(categories) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categoriesMap(categories),
	})
}

// GetQuestionsByCategory returns one page of a category's questions.
// total_questions is the count across all categories, and an empty page
// is a success with an empty list; both match the behavior clients of
// this API already depend on.
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	category, err := h.store.FindCategory(uint(id))
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.store.QuestionsByCategory(category.ID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	total, err := h.store.CountQuestions()
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        paginate(pageParam(c), questions),
		"total_questions":  total,
		"current_category": category.Type,
	})
}
