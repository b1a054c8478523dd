package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleParticipant = "PARTICIPANT"
	RoleOrganizer   = "ORGANIZER"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role      string         `json:"role" gorm:"not null;default:'PARTICIPANT'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}
