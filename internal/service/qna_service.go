package service

import (
	"fmt"

	"qnaboard/internal/dto"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QnaService orchestrates the question/answer aggregate: it loads the
// aggregate with its live answers, invokes the domain operation, and hands
// the mutated state plus audit records to the repository for transactional
// persistence. Authorization failures surface as model.ErrUnauthorized.
type QnaService interface {
	CreateQuestion(loginUser model.User, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestions() ([]dto.QuestionSummaryDTO, error)
	GetQuestion(id uint) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(loginUser model.User, id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(loginUser model.User, id uint) ([]dto.DeleteHistoryDTO, error)
	AddAnswer(loginUser model.User, questionID uint, req dto.AnswerCreateDTO) (*dto.AnswerResponseDTO, error)
	DeleteAnswer(loginUser model.User, answerID uint) (*dto.DeleteHistoryDTO, error)
	GetDeleteHistories() ([]dto.DeleteHistoryDTO, error)
}

type qnaService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	historyRepo  repository.DeleteHistoryRepository
}

func NewQnaService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	historyRepo repository.DeleteHistoryRepository,
) QnaService {
	return &qnaService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		historyRepo:  historyRepo,
	}
}

func (s *qnaService) CreateQuestion(loginUser model.User, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question := model.NewQuestion(req.Title, req.Contents)
	question.WriteBy(loginUser)

	if err := s.questionRepo.Create(question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: failed to persist question")
		return nil, err
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *qnaService) GetQuestions() ([]dto.QuestionSummaryDTO, error) {
	summaries, err := s.questionRepo.FindAllWithAnswerCount()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		var item dto.QuestionSummaryDTO
		copier.Copy(&item, &summary.Question)
		item.AnswerCount = summary.AnswerCount
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *qnaService) GetQuestion(id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByIDWithAnswers(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", id, err)
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *qnaService) UpdateQuestion(loginUser model.User, id uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", id, err)
	}

	updated, err := question.Update(loginUser, *model.NewQuestion(req.Title, req.Contents))
	if err != nil {
		log.Warn().Uint("questionID", id).Uint("userID", loginUser.ID).Msg("UpdateQuestion: not the writer")
		return nil, err
	}
	if err := s.questionRepo.Update(updated); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: failed to persist")
		return nil, err
	}
	var resp dto.QuestionResponseDTO
	copier.Copy(&resp, updated)
	return &resp, nil
}

func (s *qnaService) DeleteQuestion(loginUser model.User, id uint) ([]dto.DeleteHistoryDTO, error) {
	question, err := s.questionRepo.FindByIDWithAnswers(id)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", id, err)
	}

	histories, err := question.Delete(loginUser)
	if err != nil {
		log.Warn().Uint("questionID", id).Uint("userID", loginUser.ID).Msg("DeleteQuestion: delete refused")
		return nil, err
	}
	if err := s.questionRepo.SaveDeletion(question, histories); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("DeleteQuestion: failed to persist cascade")
		return nil, err
	}
	log.Info().Uint("questionID", id).Int("histories", len(histories)).Msg("DeleteQuestion: question deleted")

	resp := make([]dto.DeleteHistoryDTO, 0, len(histories))
	copier.Copy(&resp, &histories)
	return resp, nil
}

func (s *qnaService) AddAnswer(loginUser model.User, questionID uint, req dto.AnswerCreateDTO) (*dto.AnswerResponseDTO, error) {
	question, err := s.questionRepo.FindByIDWithAnswers(questionID)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}

	answer := question.AddAnswer(model.NewAnswer(loginUser, req.Contents))
	if err := s.answerRepo.Create(answer); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("AddAnswer: failed to persist answer")
		return nil, err
	}
	var resp dto.AnswerResponseDTO
	copier.Copy(&resp, answer)
	return &resp, nil
}

func (s *qnaService) DeleteAnswer(loginUser model.User, answerID uint) (*dto.DeleteHistoryDTO, error) {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		return nil, fmt.Errorf("answer not found with ID %d: %w", answerID, err)
	}

	history, err := answer.Delete(loginUser)
	if err != nil {
		log.Warn().Uint("answerID", answerID).Uint("userID", loginUser.ID).Msg("DeleteAnswer: not the writer")
		return nil, err
	}
	if err := s.answerRepo.SaveDeletion(answer, history); err != nil {
		log.Error().Err(err).Uint("answerID", answerID).Msg("DeleteAnswer: failed to persist")
		return nil, err
	}
	var resp dto.DeleteHistoryDTO
	copier.Copy(&resp, history)
	return &resp, nil
}

func (s *qnaService) GetDeleteHistories() ([]dto.DeleteHistoryDTO, error) {
	histories, err := s.historyRepo.FindAll()
	if err != nil {
		return nil, err
	}
	var resp []dto.DeleteHistoryDTO
	copier.Copy(&resp, &histories)
	return resp, nil
}
