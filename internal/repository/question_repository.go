package repository

import (
	"qnaboard/internal/model"

	"gorm.io/gorm"
)

// QuestionSummary is the list projection: a question row plus its live answer
// count.
type QuestionSummary struct {
	model.Question
	AnswerCount int
}

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDWithAnswers(id uint) (*model.Question, error)
	FindAllWithAnswerCount() ([]QuestionSummary, error)
	Update(question *model.Question) error
	SaveDeletion(question *model.Question, histories []model.DeleteHistory) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// Writer already exists; only the question row is inserted.
	return r.db.Omit("Writer").Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Writer").
		Where("deleted = ?", false).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDWithAnswers loads the full aggregate: the writer, and the live
// answers (with their writers) in ascending id order. Soft-deleted answers
// never reach the domain model.
func (r *questionRepository) FindByIDWithAnswers(id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Writer").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Where("deleted = ?", false).Order("answers.id ASC")
		}).
		Preload("Answers.Writer").
		Where("deleted = ?", false).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAllWithAnswerCount() ([]QuestionSummary, error) {
	var results []QuestionSummary
	err := r.db.Model(&model.Question{}).
		Select("questions.*, (SELECT COUNT(*) FROM answers WHERE answers.question_id = questions.id AND answers.deleted = false) as answer_count").
		Where("questions.deleted = ?", false).
		Order("questions.created_at DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	for i := range results {
		if err := r.db.First(&results[i].Writer, results[i].WriterID).Error; err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Omit("Writer", "Answers").Save(question).Error
}

// SaveDeletion persists the outcome of a delete cascade atomically: every
// answer's deleted flag, the question's deleted flag, and the audit records.
// Either all of it commits or none of it does.
func (r *questionRepository) SaveDeletion(question *model.Question, histories []model.DeleteHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, answer := range question.Answers {
			if err := tx.Model(&model.Answer{}).
				Where("id = ?", answer.ID).
				Update("deleted", answer.Deleted).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&model.Question{}).
			Where("id = ?", question.ID).
			Update("deleted", question.Deleted).Error; err != nil {
			return err
		}
		if len(histories) > 0 {
			if err := tx.Omit("DeletedBy").Create(&histories).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
