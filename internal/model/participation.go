package model

import (
	"time"

	"gorm.io/gorm"
)

// Participation is one user's attempt at one quiz. It is created with a zero
// score and finished exactly once by the submit operation, which sets the
// score, the finish timestamp and the answer rows in a single transaction.
type Participation struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     uint           `json:"userId" gorm:"not null;index"`
	User       User           `json:"-" gorm:"foreignKey:UserID"`
	QuizID     uint           `json:"quizId" gorm:"not null;index"`
	Quiz       Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score      int            `json:"score" gorm:"not null;default:0"`
	StartedAt  time.Time      `json:"startedAt" gorm:"autoCreateTime"`
	FinishedAt *time.Time     `json:"finishedAt,omitempty"`
	Answers    []Answer       `json:"answers,omitempty" gorm:"foreignKey:ParticipationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Finished reports whether the attempt has already been submitted.
func (p *Participation) Finished() bool {
	return p.FinishedAt != nil
}
