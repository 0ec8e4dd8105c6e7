package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Role      string    `gorm:"size:20;not null;default:'participant'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RolePresenter   = "presenter"
	RoleParticipant = "participant"
)
