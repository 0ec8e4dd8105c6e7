package models

import "time"

type Response struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	QuestionID  uint      `gorm:"not null;uniqueIndex:idx_response_unique;index:idx_response_order" json:"question_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_response_unique" json:"user_id"`
	SessionID   uint      `gorm:"not null;uniqueIndex:idx_response_unique;index" json:"session_id"`
	Answer      string    `gorm:"size:1;not null" json:"answer"`
	IsCorrect   bool      `gorm:"not null" json:"is_correct"`
	SubmittedAt time.Time `gorm:"index:idx_response_order" json:"submitted_at"`
}
