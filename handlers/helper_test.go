package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http/httptest"
	"testing"

	"trivia/handlers"
	"trivia/models"
	"trivia/routes"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires the real route table over an in-memory sqlite
// store. The quiz handler gets a fixed-seed random source so draws are
// reproducible.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: is per-connection; keep the pool at one so every query
	// sees the same database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))

	store := services.NewTriviaService(db)
	router := gin.New()
	routes.SetupRoutes(
		router,
		handlers.NewCategoryHandler(store),
		handlers.NewQuestionHandler(store),
		handlers.NewQuizHandler(store, rand.New(rand.NewSource(42))),
	)
	return router, db
}

// seedTrivia creates three categories and twelve questions spread across
// them, enough for two pages.
func seedTrivia(t *testing.T, db *gorm.DB) ([]models.Category, []models.Question) {
	t.Helper()

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
	}
	require.NoError(t, db.Create(&categories).Error)

	questions := make([]models.Question, 0, 12)
	for i := 1; i <= 12; i++ {
		questions = append(questions, models.Question{
			Question:   fmt.Sprintf("Question number %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   categories[(i-1)%len(categories)].ID,
			Difficulty: (i-1)%5 + 1,
		})
	}
	require.NoError(t, db.Create(&questions).Error)
	return categories, questions
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec.Code, payload
}

func doRawRequest(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec.Code, payload
}

func requireEnvelopeError(t *testing.T, code int, payload map[string]any, want int, message string) {
	t.Helper()
	require.Equal(t, want, code)
	require.Equal(t, false, payload["success"])
	require.Equal(t, float64(want), payload["error"])
	require.Equal(t, message, payload["message"])
}
