package repository

import (
	"qnaboard/internal/model"

	"gorm.io/gorm"
)

// DeleteHistoryRepository is read-only: history rows are written inside the
// delete transactions (see QuestionRepository.SaveDeletion and
// AnswerRepository.SaveDeletion) and are never updated or removed.
type DeleteHistoryRepository interface {
	FindAll() ([]model.DeleteHistory, error)
}

type deleteHistoryRepository struct {
	db *gorm.DB
}

func NewDeleteHistoryRepository(db *gorm.DB) DeleteHistoryRepository {
	return &deleteHistoryRepository{db: db}
}

func (r *deleteHistoryRepository) FindAll() ([]model.DeleteHistory, error) {
	var histories []model.DeleteHistory
	if err := r.db.Preload("DeletedBy").Order("id ASC").Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}
