package services

import (
	"trivia/models"

	"gorm.io/gorm"
)

// Store is the storage-access handle handlers depend on. The production
// implementation is TriviaService; tests may substitute their own.
type Store interface {
	ListCategories() ([]models.Category, error)
	FindCategory(id uint) (*models.Category, error)
	ListQuestions() ([]models.Question, error)
	FindQuestion(id uint) (*models.Question, error)
	InsertQuestion(question *models.Question) error
	DeleteQuestion(question *models.Question) error
	SearchQuestions(term string) ([]models.Question, error)
	QuestionsByCategory(categoryID uint) ([]models.Question, error)
	CountQuestions() (int64, error)
}

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

func (s *TriviaService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("id").Find(&categories).Error
	return categories, err
}

func (s *TriviaService) FindCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Order("id").Find(&questions).Error
	return questions, err
}

func (s *TriviaService) FindQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *TriviaService) InsertQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

// DeleteQuestion fails when the row is already gone, so a repeated
// delete of the same id is observable as an error.
func (s *TriviaService) DeleteQuestion(question *models.Question) error {
	result := s.db.Delete(&models.Question{}, question.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchQuestions matches the term case-insensitively against the
// question text. LOWER/LIKE keeps the query portable between postgres
// and the sqlite store used in tests.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id").
		Find(&questions).Error
	return questions, err
}

func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	return questions, err
}

func (s *TriviaService) CountQuestions() (int64, error) {
	var count int64
	err := s.db.Model(&models.Question{}).Count(&count).Error
	return count, err
}
