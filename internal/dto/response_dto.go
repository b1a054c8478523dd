package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponseDTO deliberately omits the password hash.
type UserResponseDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponseDTO is returned by register (user only) and login (user + token).
type AuthResponseDTO struct {
	User  UserResponseDTO `json:"user"`
	Token string          `json:"token,omitempty"`
}

type OptionResponseDTO struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionResponseDTO struct {
	ID       uint                `json:"id"`
	QuizID   uint                `json:"quizId"`
	Text     string              `json:"text"`
	Position int                 `json:"position"`
	Options  []OptionResponseDTO `json:"options,omitempty"`
}

type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	CreatedByID uint                  `json:"createdById"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

type AnswerResponseDTO struct {
	ID               uint `json:"id"`
	ParticipationID  uint `json:"participationId"`
	QuestionID       uint `json:"questionId"`
	SelectedOptionID uint `json:"selectedOptionId"`
}

type ParticipationResponseDTO struct {
	ID         uint                `json:"id"`
	UserID     uint                `json:"userId"`
	QuizID     uint                `json:"quizId"`
	Score      int                 `json:"score"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt *time.Time          `json:"finishedAt,omitempty"`
	Quiz       *QuizResponseDTO    `json:"quiz,omitempty"`
	Answers    []AnswerResponseDTO `json:"answers,omitempty"`
}
