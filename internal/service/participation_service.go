package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/internal/apperror"
	"github.com/walnut-pro/sb1-d8pb5s/internal/dto"
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"github.com/walnut-pro/sb1-d8pb5s/internal/repository"
	"gorm.io/gorm"
)

type ParticipationService interface {
	Start(actor *model.User, quizID uint) (*dto.ParticipationResponseDTO, error)
	ListMine(actor *model.User) ([]dto.ParticipationResponseDTO, error)
	Submit(actor *model.User, participationID uint, req dto.ParticipationSubmitDTO) (*dto.ParticipationResponseDTO, error)
}

type participationService struct {
	participationRepo repository.ParticipationRepository
}

func NewParticipationService(participationRepo repository.ParticipationRepository) ParticipationService {
	return &participationService{participationRepo: participationRepo}
}

// Start creates a fresh attempt with score 0 and no finish time. The quiz is
// not checked for existence and a user may hold several open attempts at once.
func (s *participationService) Start(actor *model.User, quizID uint) (*dto.ParticipationResponseDTO, error) {
	if actor == nil {
		return nil, apperror.ErrUnauthorized
	}

	participation := &model.Participation{
		UserID:    actor.ID,
		QuizID:    quizID,
		Score:     0,
		StartedAt: time.Now(),
	}
	if err := s.participationRepo.Create(participation); err != nil {
		log.Error().Err(err).Uint("quizId", quizID).Uint("userId", actor.ID).Msg("Failed to create participation")
		return nil, fmt.Errorf("creating participation: %w", err)
	}

	log.Info().Uint("participationId", participation.ID).Uint("quizId", quizID).Uint("userId", actor.ID).Msg("Participation started")
	var resp dto.ParticipationResponseDTO
	if err := copier.Copy(&resp, participation); err != nil {
		return nil, fmt.Errorf("preparing participation response: %w", err)
	}
	resp.Quiz = nil // quiz is not loaded on a fresh attempt
	return &resp, nil
}

func (s *participationService) ListMine(actor *model.User) ([]dto.ParticipationResponseDTO, error) {
	if actor == nil {
		return nil, apperror.ErrUnauthorized
	}

	participations, err := s.participationRepo.FindAllByUser(actor.ID)
	if err != nil {
		log.Error().Err(err).Uint("userId", actor.ID).Msg("Failed to list participations")
		return nil, fmt.Errorf("fetching participations: %w", err)
	}

	dtos := make([]dto.ParticipationResponseDTO, 0, len(participations))
	for i := range participations {
		var resp dto.ParticipationResponseDTO
		if err := copier.Copy(&resp, &participations[i]); err != nil {
			return nil, fmt.Errorf("preparing participation response: %w", err)
		}
		if participations[i].Quiz.ID == 0 {
			resp.Quiz = nil
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

// Submit scores a batch of answers against the quiz's correct-answer key and
// finishes the attempt. Each answer naming a question of the quiz counts one
// point when it selects the question's correct option; answers naming unknown
// questions are dropped and neither score nor persist. Score, finish time and
// answer rows are committed in a single transaction, and a finished
// participation cannot be submitted again.
func (s *participationService) Submit(actor *model.User, participationID uint, req dto.ParticipationSubmitDTO) (*dto.ParticipationResponseDTO, error) {
	if actor == nil {
		return nil, apperror.ErrUnauthorized
	}

	participation, err := s.participationRepo.FindByIDWithQuiz(participationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrParticipationNotFound
		}
		log.Error().Err(err).Uint("participationId", participationID).Msg("Failed to load participation")
		return nil, fmt.Errorf("loading participation %d: %w", participationID, err)
	}
	if participation.UserID != actor.ID {
		return nil, apperror.ErrUnauthorized
	}
	if participation.Finished() {
		return nil, apperror.ErrAlreadyFinished
	}

	questionMap := make(map[uint]model.Question, len(participation.Quiz.Questions))
	for _, q := range participation.Quiz.Questions {
		questionMap[q.ID] = q
	}

	score := 0
	var answers []model.Answer
	for _, submitted := range req.Answers {
		question, ok := questionMap[submitted.QuestionID]
		if !ok {
			log.Warn().
				Uint("questionId", submitted.QuestionID).
				Uint("quizId", participation.QuizID).
				Msg("Submitted answer references a question outside this quiz, skipping")
			continue
		}
		if correct := question.CorrectOption(); correct != nil && correct.ID == submitted.SelectedOptionID {
			score++
		}
		answers = append(answers, model.Answer{
			ParticipationID:  participation.ID,
			QuestionID:       submitted.QuestionID,
			SelectedOptionID: submitted.SelectedOptionID,
		})
	}

	now := time.Now()
	participation.Score = score
	participation.FinishedAt = &now
	if err := s.participationRepo.Finish(participation, answers); err != nil {
		log.Error().Err(err).Uint("participationId", participation.ID).Msg("Failed to persist submission")
		return nil, fmt.Errorf("persisting submission: %w", err)
	}
	participation.Answers = answers

	log.Info().
		Uint("participationId", participation.ID).
		Int("score", score).
		Int("answerCount", len(answers)).
		Msg("Participation submitted")

	var resp dto.ParticipationResponseDTO
	if err := copier.Copy(&resp, participation); err != nil {
		return nil, fmt.Errorf("preparing participation response: %w", err)
	}
	resp.Quiz = nil // the submission response carries scalars and answers only
	return &resp, nil
}
