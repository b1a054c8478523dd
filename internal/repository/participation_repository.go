package repository

import (
	"github.com/walnut-pro/sb1-d8pb5s/internal/model"
	"gorm.io/gorm"
)

type ParticipationRepository interface {
	Create(participation *model.Participation) error
	// FindByIDWithQuiz loads the participation together with its quiz,
	// questions and options - the authoritative correct-answer key.
	FindByIDWithQuiz(id uint) (*model.Participation, error)
	FindAllByUser(userID uint) ([]model.Participation, error)
	// Finish persists the computed score, the finish timestamp and the
	// submitted answers atomically.
	Finish(participation *model.Participation, answers []model.Answer) error
}

type participationRepository struct {
	db *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

func (r *participationRepository) Create(participation *model.Participation) error {
	return r.db.Create(participation).Error
}

func (r *participationRepository) FindByIDWithQuiz(id uint) (*model.Participation, error) {
	var participation model.Participation
	err := r.db.
		Preload("Quiz").
		Preload("Quiz.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Quiz.Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		}).
		First(&participation, id).Error
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

func (r *participationRepository) FindAllByUser(userID uint) ([]model.Participation, error) {
	var participations []model.Participation
	err := r.db.
		Preload("Quiz").
		Preload("Answers").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&participations).Error
	if err != nil {
		return nil, err
	}
	return participations, nil
}

func (r *participationRepository) Finish(participation *model.Participation, answers []model.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Participation{}).
			Where("id = ?", participation.ID).
			Updates(map[string]interface{}{
				"score":       participation.Score,
				"finished_at": participation.FinishedAt,
			}).Error
		if err != nil {
			return err
		}
		if len(answers) == 0 {
			return nil
		}
		return tx.Create(&answers).Error
	})
}
