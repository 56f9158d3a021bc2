package service

import (
	"errors"
	"testing"

	"qnaboard/internal/dto"
	"qnaboard/internal/model"
	"qnaboard/internal/repository"

	"gorm.io/gorm"
)

// fakeQuestionRepo serves one in-memory aggregate and records what the
// service asked it to persist.
type fakeQuestionRepo struct {
	question        *model.Question
	savedDeletion   *model.Question
	savedHistories  []model.DeleteHistory
	updatedQuestion *model.Question
}

func (f *fakeQuestionRepo) Create(q *model.Question) error {
	q.ID = 1
	f.question = q
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	if f.question == nil || f.question.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.question, nil
}

func (f *fakeQuestionRepo) FindByIDWithAnswers(id uint) (*model.Question, error) {
	return f.FindByID(id)
}

func (f *fakeQuestionRepo) FindAllWithAnswerCount() ([]repository.QuestionSummary, error) {
	if f.question == nil {
		return nil, nil
	}
	return []repository.QuestionSummary{{Question: *f.question, AnswerCount: len(f.question.Answers)}}, nil
}

func (f *fakeQuestionRepo) Update(q *model.Question) error {
	f.updatedQuestion = q
	return nil
}

func (f *fakeQuestionRepo) SaveDeletion(q *model.Question, histories []model.DeleteHistory) error {
	f.savedDeletion = q
	f.savedHistories = histories
	return nil
}

type fakeAnswerRepo struct {
	answer       *model.Answer
	savedAnswer  *model.Answer
	savedHistory *model.DeleteHistory
}

func (f *fakeAnswerRepo) Create(a *model.Answer) error {
	a.ID = 100
	f.answer = a
	return nil
}

func (f *fakeAnswerRepo) FindByID(id uint) (*model.Answer, error) {
	if f.answer == nil || f.answer.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.answer, nil
}

func (f *fakeAnswerRepo) SaveDeletion(a *model.Answer, h *model.DeleteHistory) error {
	f.savedAnswer = a
	f.savedHistory = h
	return nil
}

type fakeHistoryRepo struct {
	histories []model.DeleteHistory
}

func (f *fakeHistoryRepo) FindAll() ([]model.DeleteHistory, error) {
	return f.histories, nil
}

func newServiceFixture(question *model.Question) (QnaService, *fakeQuestionRepo, *fakeAnswerRepo) {
	questionRepo := &fakeQuestionRepo{question: question}
	answerRepo := &fakeAnswerRepo{}
	return NewQnaService(questionRepo, answerRepo, &fakeHistoryRepo{}), questionRepo, answerRepo
}

func fixtureQuestion(writer model.User) *model.Question {
	question := model.NewQuestion("title", "content")
	question.ID = 1
	question.WriteBy(writer)
	return question
}

func TestDeleteQuestionPersistsCascade(t *testing.T) {
	writer := model.User{ID: 1, UserID: "javajigi"}
	question := fixtureQuestion(writer)
	answer := model.NewAnswer(writer, "answer")
	answer.ID = 7
	question.AddAnswer(answer)

	svc, questionRepo, _ := newServiceFixture(question)

	histories, err := svc.DeleteQuestion(writer, 1)
	if err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if len(histories) != 2 {
		t.Fatalf("expected 2 history DTOs, got %d", len(histories))
	}
	if histories[0].ContentType != string(model.ContentTypeAnswer) || histories[0].ContentID != 7 {
		t.Errorf("unexpected first history: %+v", histories[0])
	}
	if histories[1].ContentType != string(model.ContentTypeQuestion) || histories[1].ContentID != 1 {
		t.Errorf("unexpected last history: %+v", histories[1])
	}

	if questionRepo.savedDeletion == nil || !questionRepo.savedDeletion.Deleted {
		t.Error("deleted question was not handed to the repository")
	}
	if len(questionRepo.savedHistories) != 2 {
		t.Errorf("expected 2 persisted histories, got %d", len(questionRepo.savedHistories))
	}
}

func TestDeleteQuestionRefusedNothingPersisted(t *testing.T) {
	writer := model.User{ID: 1, UserID: "javajigi"}
	other := model.User{ID: 2, UserID: "sanjigi"}
	question := fixtureQuestion(writer)
	answer := model.NewAnswer(other, "their answer")
	answer.ID = 7
	question.AddAnswer(answer)

	svc, questionRepo, _ := newServiceFixture(question)

	_, err := svc.DeleteQuestion(writer, 1)
	if !errors.Is(err, model.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if questionRepo.savedDeletion != nil {
		t.Error("nothing may be persisted on a refused delete")
	}
	if question.Deleted || answer.Deleted {
		t.Error("no flag may change on a refused delete")
	}
}

func TestUpdateQuestionUnauthorized(t *testing.T) {
	writer := model.User{ID: 1, UserID: "javajigi"}
	other := model.User{ID: 2, UserID: "sanjigi"}
	svc, questionRepo, _ := newServiceFixture(fixtureQuestion(writer))

	_, err := svc.UpdateQuestion(other, 1, dto.QuestionCreateDTO{Title: "update", Contents: "update"})
	if !errors.Is(err, model.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if questionRepo.updatedQuestion != nil {
		t.Error("refused update must not be persisted")
	}
}

func TestAddAnswerSetsBackReference(t *testing.T) {
	writer := model.User{ID: 1, UserID: "javajigi"}
	other := model.User{ID: 2, UserID: "sanjigi"}
	svc, _, answerRepo := newServiceFixture(fixtureQuestion(writer))

	resp, err := svc.AddAnswer(other, 1, dto.AnswerCreateDTO{Contents: "an answer"})
	if err != nil {
		t.Fatalf("AddAnswer failed: %v", err)
	}
	if resp.QuestionID != 1 {
		t.Errorf("answer not associated with the question: %+v", resp)
	}
	if answerRepo.answer == nil || answerRepo.answer.WriterID != other.ID {
		t.Error("persisted answer must carry the login user as writer")
	}
}

func TestDeleteAnswerByOtherUser(t *testing.T) {
	writer := model.User{ID: 1, UserID: "javajigi"}
	other := model.User{ID: 2, UserID: "sanjigi"}
	svc, _, answerRepo := newServiceFixture(fixtureQuestion(writer))

	answer := model.NewAnswer(writer, "answer")
	answer.ID = 100
	answerRepo.answer = answer

	_, err := svc.DeleteAnswer(other, 100)
	if !errors.Is(err, model.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if answerRepo.savedAnswer != nil || answer.Deleted {
		t.Error("refused answer delete must not mutate or persist")
	}
}

func TestDeleteQuestionNotFound(t *testing.T) {
	writer := model.User{ID: 1, UserID: "javajigi"}
	svc, _, _ := newServiceFixture(nil)

	_, err := svc.DeleteQuestion(writer, 42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected wrapped ErrRecordNotFound, got %v", err)
	}
}
