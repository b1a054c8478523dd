package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	QuizID    uint           `json:"quizId" gorm:"not null;index"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Position  int            `json:"position" gorm:"not null"`
	Options   []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CorrectOption returns the first option flagged correct, or nil when none is.
// Questions are expected to carry exactly one correct option; that invariant is
// not enforced at the storage layer.
func (q *Question) CorrectOption() *Option {
	for i := range q.Options {
		if q.Options[i].IsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}
