package models

import "time"

type Quiz struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	CreatedBy uint       `gorm:"not null;index" json:"created_by"`
	Creator   User       `gorm:"foreignKey:CreatedBy" json:"-"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
