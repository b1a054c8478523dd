package repository

import (
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindAllWithQuestions() ([]model.Quiz, error)
	Update(quiz *model.Quiz, questions []model.Question) error
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates the nested questions and options alongside the quiz.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllWithQuestions() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		}).
		Order("quizzes.created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Update rewrites the quiz metadata and replaces the entire question set in
// one transaction. Question and option ids are NOT preserved across an update.
func (r *quizRepository) Update(quiz *model.Quiz, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteQuestionsForQuiz(tx, quiz.ID); err != nil {
			return err
		}
		quiz.Questions = questions
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(quiz).Error
	})
}

func (r *quizRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteQuestionsForQuiz(tx, id); err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}

func deleteQuestionsForQuiz(tx *gorm.DB, quizID uint) error {
	var questionIDs []uint
	if err := tx.Model(&model.Question{}).Where("quiz_id = ?", quizID).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) == 0 {
		return nil
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Option{}).Error; err != nil {
		return err
	}
	return tx.Where("quiz_id = ?", quizID).Delete(&model.Question{}).Error
}
