package models

type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"not null"`
	Category   uint   `json:"category" gorm:"not null"`
	Difficulty int    `json:"difficulty" gorm:"not null"`
}

func (Question) TableName() string {
	return "questions"
}
