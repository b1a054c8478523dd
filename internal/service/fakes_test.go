package service_test

import (
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeQuizRepo struct {
	nextID  uint
	quizzes map[uint]*model.Quiz
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: map[uint]*model.Quiz{}}
}

func (r *fakeQuizRepo) assignIDs(quiz *model.Quiz) {
	if quiz.ID == 0 {
		r.nextID++
		quiz.ID = r.nextID
	}
	for i := range quiz.Questions {
		r.nextID++
		quiz.Questions[i].ID = r.nextID
		quiz.Questions[i].QuizID = quiz.ID
		for j := range quiz.Questions[i].Options {
			r.nextID++
			quiz.Questions[i].Options[j].ID = r.nextID
			quiz.Questions[i].Options[j].QuestionID = quiz.Questions[i].ID
		}
	}
}

func cloneQuiz(quiz *model.Quiz) *model.Quiz {
	clone := *quiz
	clone.Questions = make([]model.Question, len(quiz.Questions))
	for i, q := range quiz.Questions {
		qc := q
		qc.Options = append([]model.Option(nil), q.Options...)
		clone.Questions[i] = qc
	}
	return &clone
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	r.assignIDs(quiz)
	r.quizzes[quiz.ID] = cloneQuiz(quiz)
	return nil
}

func (r *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *quiz
	clone.Questions = nil
	return &clone, nil
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneQuiz(quiz), nil
}

func (r *fakeQuizRepo) FindAllWithQuestions() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	for id := uint(1); id <= r.nextID; id++ {
		if quiz, ok := r.quizzes[id]; ok {
			quizzes = append(quizzes, *cloneQuiz(quiz))
		}
	}
	return quizzes, nil
}

func (r *fakeQuizRepo) Update(quiz *model.Quiz, questions []model.Question) error {
	if _, ok := r.quizzes[quiz.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	quiz.Questions = questions
	r.assignIDs(quiz)
	r.quizzes[quiz.ID] = cloneQuiz(quiz)
	return nil
}

func (r *fakeQuizRepo) Delete(id uint) error {
	delete(r.quizzes, id)
	return nil
}

type fakeParticipationRepo struct {
	nextID         uint
	participations map[uint]*model.Participation
	quizzes        map[uint]model.Quiz
	finishCalls    int
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{
		participations: map[uint]*model.Participation{},
		quizzes:        map[uint]model.Quiz{},
	}
}

func (r *fakeParticipationRepo) Create(participation *model.Participation) error {
	r.nextID++
	participation.ID = r.nextID
	clone := *participation
	r.participations[participation.ID] = &clone
	return nil
}

func (r *fakeParticipationRepo) FindByIDWithQuiz(id uint) (*model.Participation, error) {
	participation, ok := r.participations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *participation
	if quiz, ok := r.quizzes[participation.QuizID]; ok {
		clone.Quiz = quiz
	}
	return &clone, nil
}

func (r *fakeParticipationRepo) FindAllByUser(userID uint) ([]model.Participation, error) {
	var participations []model.Participation
	for id := uint(1); id <= r.nextID; id++ {
		participation, ok := r.participations[id]
		if !ok || participation.UserID != userID {
			continue
		}
		clone := *participation
		if quiz, ok := r.quizzes[participation.QuizID]; ok {
			clone.Quiz = quiz
		}
		participations = append(participations, clone)
	}
	return participations, nil
}

func (r *fakeParticipationRepo) Finish(participation *model.Participation, answers []model.Answer) error {
	stored, ok := r.participations[participation.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.finishCalls++
	stored.Score = participation.Score
	stored.FinishedAt = participation.FinishedAt
	for i := range answers {
		r.nextID++
		answers[i].ID = r.nextID
	}
	stored.Answers = append(stored.Answers, answers...)
	return nil
}

type fakeIdentityProvider struct {
	signUpErr   error
	signInErr   error
	signUpCalls int
	signInCalls int
}

func (p *fakeIdentityProvider) SignUp(email, password string) error {
	p.signUpCalls++
	return p.signUpErr
}

func (p *fakeIdentityProvider) SignIn(email, password string) error {
	p.signInCalls++
	return p.signInErr
}
