package service_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/walnut-pro/sb1-d8pb5s/internal/apperror"
	"github.com/walnut-pro/sb1-d8pb5s/internal/dto"
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"github.com/walnut-pro/sb1-d8pb5s/internal/service"
)

var quizRequest = dto.QuizCreateDTO{
	Title:       "Capitals",
	Description: "Geography basics",
	Questions: []dto.QuestionCreateDTO{
		{
			Text: "Capital of France?",
			Options: []dto.OptionCreateDTO{
				{Text: "Paris", IsCorrect: true},
				{Text: "Lyon"},
			},
		},
		{
			Text: "Capital of Japan?",
			Options: []dto.OptionCreateDTO{
				{Text: "Osaka"},
				{Text: "Tokyo", IsCorrect: true},
			},
		},
	},
}

func TestCreateQuizRequiresOrganizer(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizRepo())

	participant := &model.User{ID: 1, Role: model.RoleParticipant}
	if _, err := svc.Create(participant, quizRequest); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for participant, got %v", err)
	}
	if _, err := svc.Create(nil, quizRequest); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for anonymous caller, got %v", err)
	}
}

func TestCreateQuizBuildsNestedStructure(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizRepo())
	organizer := &model.User{ID: 5, Role: model.RoleOrganizer}

	quiz, err := svc.Create(organizer, quizRequest)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if quiz.CreatedByID != organizer.ID {
		t.Fatalf("expected creator %d, got %d", organizer.ID, quiz.CreatedByID)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.Position != i+1 {
			t.Fatalf("question %d has position %d", i, q.Position)
		}
		if len(q.Options) != 2 {
			t.Fatalf("question %d has %d options", i, len(q.Options))
		}
	}
	if !quiz.Questions[0].Options[0].IsCorrect || quiz.Questions[0].Options[1].IsCorrect {
		t.Fatal("correct flags not preserved on first question")
	}
	if !quiz.Questions[1].Options[1].IsCorrect {
		t.Fatal("correct flag not preserved on second question")
	}
}

func TestGetQuizNotFound(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizRepo())

	if _, err := svc.Get(404); !errors.Is(err, apperror.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestGetQuizOrderingStable(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizRepo())
	organizer := &model.User{ID: 5, Role: model.RoleOrganizer}

	created, err := svc.Create(organizer, quizRequest)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	second, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated reads must return identical question/option ordering")
	}
}

func TestUpdateQuizReplacesQuestionSet(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizRepo())
	organizer := &model.User{ID: 5, Role: model.RoleOrganizer}

	created, err := svc.Create(organizer, quizRequest)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldQuestionID := created.Questions[0].ID

	updated, err := svc.Update(organizer, created.ID, dto.QuizCreateDTO{
		Title:       "Capitals v2",
		Description: "Refreshed",
		Questions: []dto.QuestionCreateDTO{
			{
				Text: "Capital of Italy?",
				Options: []dto.OptionCreateDTO{
					{Text: "Rome", IsCorrect: true},
					{Text: "Milan"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Capitals v2" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if len(updated.Questions) != 1 {
		t.Fatalf("expected replaced question set of 1, got %d", len(updated.Questions))
	}
	// Replace-all semantics: the old question ids are gone.
	if updated.Questions[0].ID == oldQuestionID {
		t.Fatal("expected a fresh question id after replacement")
	}
}

func TestUpdateAndDeleteRequireOrganizer(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := service.NewQuizService(repo)
	organizer := &model.User{ID: 5, Role: model.RoleOrganizer}
	participant := &model.User{ID: 6, Role: model.RoleParticipant}

	created, err := svc.Create(organizer, quizRequest)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(participant, created.ID, quizRequest); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on update, got %v", err)
	}
	if err := svc.Delete(participant, created.ID); !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized on delete, got %v", err)
	}

	if err := svc.Delete(organizer, created.ID); err != nil {
		t.Fatalf("organizer delete failed: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, apperror.ErrQuizNotFound) {
		t.Fatalf("expected quiz to be gone, got %v", err)
	}
}

func TestListReturnsAllQuizzes(t *testing.T) {
	svc := service.NewQuizService(newFakeQuizRepo())
	organizer := &model.User{ID: 5, Role: model.RoleOrganizer}

	if _, err := svc.Create(organizer, quizRequest); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second := quizRequest
	second.Title = "More capitals"
	if _, err := svc.Create(organizer, second); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	quizzes, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}
	for _, quiz := range quizzes {
		if len(quiz.Questions) == 0 {
			t.Fatal("expected questions to be eagerly attached")
		}
	}
}
