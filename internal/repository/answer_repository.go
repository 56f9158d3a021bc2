package repository

import (
	"qnaboard/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(answer *model.Answer) error
	FindByID(id uint) (*model.Answer, error)
	SaveDeletion(answer *model.Answer, history *model.DeleteHistory) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Omit("Writer").Create(answer).Error
}

func (r *answerRepository) FindByID(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.Preload("Writer").
		Where("deleted = ?", false).
		First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// SaveDeletion persists a standalone answer deletion together with its audit
// record in one transaction.
func (r *answerRepository) SaveDeletion(answer *model.Answer, history *model.DeleteHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Answer{}).
			Where("id = ?", answer.ID).
			Update("deleted", answer.Deleted).Error; err != nil {
			return err
		}
		return tx.Omit("DeletedBy").Create(history).Error
	})
}
