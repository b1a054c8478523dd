package model

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	ParticipationID  uint           `json:"participationId" gorm:"not null;index"`
	QuestionID       uint           `json:"questionId" gorm:"not null;index"`
	SelectedOptionID uint           `json:"selectedOptionId" gorm:"not null"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
