package handlers

import (
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"trivia/models"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	store services.Store

	// rand.Rand is not safe for concurrent use and gin serves requests
	// on concurrent goroutines, so every draw takes the mutex.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizHandler takes the random source used to draw questions so tests
// can seed a deterministic one.
func NewQuizHandler(store services.Store, rng *rand.Rand) *QuizHandler {
	return &QuizHandler{store: store, rng: rng}
}

// CategoryID accepts both JSON numbers and numeric strings; clients send
// the "all categories" sentinel as either 0 or "0".
type CategoryID uint

func (id *CategoryID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = 0
		return nil
	}
	s := strings.Trim(string(data), `"`)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*id = CategoryID(n)
	return nil
}

type QuizCategory struct {
	ID CategoryID `json:"id"`
}

type PlayQuizRequest struct {
	PreviousQuestions *[]uint       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// PlayQuiz draws one unseen question from the requested category, or
// from every category when the id is 0. The candidates are shuffled once
// and scanned, so an exhausted pool terminates with a question-less
// success instead of spinning on re-picks.
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req PlayQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}
	if req.PreviousQuestions == nil || req.QuizCategory == nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	var (
		candidates []models.Question
		err        error
	)
	if req.QuizCategory.ID == 0 {
		candidates, err = h.store.ListQuestions()
	} else {
		candidates, err = h.store.QuestionsByCategory(uint(req.QuizCategory.ID))
	}
	if err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}
	if len(candidates) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	seen := make(map[uint]bool, len(*req.PreviousQuestions))
	for _, id := range *req.PreviousQuestions {
		seen[id] = true
	}

	h.mu.Lock()
	h.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	h.mu.Unlock()

	for _, question := range candidates {
		if !seen[question.ID] {
			c.JSON(http.StatusOK, gin.H{
				"success":  true,
				"question": question,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
