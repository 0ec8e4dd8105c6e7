package models

import "time"

type Session struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	QuizID      uint       `gorm:"not null;index" json:"quiz_id"`
	Quiz        Quiz       `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	SessionCode string     `gorm:"size:6;not null;uniqueIndex" json:"session_code"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}
