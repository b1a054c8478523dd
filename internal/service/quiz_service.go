package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/internal/apperror"
	"github.com/walnut-pro/sb1-d8pb5s/internal/dto"
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"github.com/walnut-pro/sb1-d8pb5s/internal/repository"
	"gorm.io/gorm"
)

// QuizService owns quiz CRUD. List and Get are public; mutations require the
// ORGANIZER role. Note that listing exposes the isCorrect flags to every
// caller, participants included.
type QuizService interface {
	List() ([]dto.QuizResponseDTO, error)
	Get(id uint) (*dto.QuizResponseDTO, error)
	Create(actor *model.User, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	Update(actor *model.User, id uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	Delete(actor *model.User, id uint) error
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) List() ([]dto.QuizResponseDTO, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizResponseDTO, 0, len(quizzes))
	for i := range quizzes {
		var resp dto.QuizResponseDTO
		if err := copier.Copy(&resp, &quizzes[i]); err != nil {
			return nil, fmt.Errorf("preparing quiz response: %w", err)
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *quizService) Get(id uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrQuizNotFound
		}
		log.Error().Err(err).Uint("quizId", id).Msg("Failed to get quiz")
		return nil, fmt.Errorf("fetching quiz %d: %w", id, err)
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) Create(actor *model.User, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if actor == nil || !actor.IsOrganizer() {
		return nil, apperror.ErrUnauthorized
	}

	quiz := &model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		CreatedByID: actor.ID,
		Questions:   buildQuestions(req.Questions),
	}
	if err := s.quizRepo.Create(quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create quiz")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}

	return s.reload(quiz.ID)
}

// Update replaces the quiz metadata and the entire question set. Existing
// question and option ids are not preserved, which invalidates answers of
// participations recorded against the old ids.
func (s *quizService) Update(actor *model.User, id uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if actor == nil || !actor.IsOrganizer() {
		return nil, apperror.ErrUnauthorized
	}

	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		log.Error().Err(err).Uint("quizId", id).Msg("Failed to load quiz for update")
		return nil, fmt.Errorf("loading quiz %d: %w", id, err)
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	if err := s.quizRepo.Update(quiz, buildQuestions(req.Questions)); err != nil {
		log.Error().Err(err).Uint("quizId", id).Msg("Failed to update quiz")
		return nil, fmt.Errorf("updating quiz %d: %w", id, err)
	}

	return s.reload(id)
}

func (s *quizService) Delete(actor *model.User, id uint) error {
	if actor == nil || !actor.IsOrganizer() {
		return apperror.ErrUnauthorized
	}

	if err := s.quizRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("quizId", id).Msg("Failed to delete quiz")
		return fmt.Errorf("deleting quiz %d: %w", id, err)
	}
	log.Info().Uint("quizId", id).Uint("actorId", actor.ID).Msg("Quiz deleted")
	return nil
}

func (s *quizService) reload(id uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		log.Error().Err(err).Uint("quizId", id).Msg("Failed to reload quiz for response")
		return nil, fmt.Errorf("reloading quiz %d: %w", id, err)
	}
	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}

func buildQuestions(reqs []dto.QuestionCreateDTO) []model.Question {
	questions := make([]model.Question, 0, len(reqs))
	for i, q := range reqs {
		options := make([]model.Option, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, model.Option{
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			})
		}
		questions = append(questions, model.Question{
			Text:     q.Text,
			Position: i + 1,
			Options:  options,
		})
	}
	return questions
}
