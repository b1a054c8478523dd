package dto

// RegisterDTO is the payload for POST /auth/register. Role is optional and
// defaults to PARTICIPANT; the dashboard flow registers ORGANIZER accounts.
type RegisterDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=PARTICIPANT ORGANIZER"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OptionCreateDTO is used within QuestionCreateDTO for quiz creation/update.
type OptionCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionCreateDTO struct {
	Text    string            `json:"text" binding:"required"`
	Options []OptionCreateDTO `json:"options" binding:"required,min=2,dive"`
}

// QuizCreateDTO is shared by POST /quizzes and PUT /quizzes/{id}; an update
// replaces the entire question set.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type ParticipationStartDTO struct {
	QuizID uint `json:"quizId" binding:"required"`
}

// SubmittedAnswerDTO is one answer within a participation submission.
type SubmittedAnswerDTO struct {
	QuestionID       uint `json:"questionId" binding:"required"`
	SelectedOptionID uint `json:"selectedOptionId" binding:"required"`
}

type ParticipationSubmitDTO struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
}
