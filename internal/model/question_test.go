package model

import (
	"errors"
	"testing"
)

func newFixtureUsers() (User, User) {
	user1 := User{ID: 1, UserID: "javajigi", Password: "password", Name: "name", Email: "javajigi@slipp.net"}
	user2 := User{ID: 2, UserID: "sanjigi", Password: "password", Name: "name", Email: "sanjigi@slipp.net"}
	return user1, user2
}

func newFixtureQuestion(writer User) *Question {
	question := NewQuestion("title", "content")
	question.ID = 10
	question.WriteBy(writer)
	return question
}

func TestIsOwner(t *testing.T) {
	user1, user2 := newFixtureUsers()
	question := newFixtureQuestion(user1)

	if !question.IsOwner(user1) {
		t.Error("writer should be owner")
	}
	if question.IsOwner(user2) {
		t.Error("other user should not be owner")
	}

	// Same attributes, different id: still not the owner.
	impostor := User{ID: 99, UserID: user1.UserID, Password: user1.Password, Name: user1.Name, Email: user1.Email}
	if question.IsOwner(impostor) {
		t.Error("identity is by id, not by attributes")
	}
}

func TestUpdate(t *testing.T) {
	user1, _ := newFixtureUsers()
	question := newFixtureQuestion(user1)

	updated, err := question.Update(user1, *NewQuestion("update", "update contents"))
	if err != nil {
		t.Fatalf("update by owner failed: %v", err)
	}
	if updated.Title != "update" || updated.Contents != "update contents" {
		t.Errorf("title/contents not updated: %q %q", updated.Title, updated.Contents)
	}
	if updated.ID != 10 || updated.WriterID != user1.ID {
		t.Error("update must preserve id and writer")
	}
}

func TestUpdateUnauthorized(t *testing.T) {
	user1, user2 := newFixtureUsers()
	question := newFixtureQuestion(user1)

	_, err := question.Update(user2, *NewQuestion("update", "update contents"))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if question.Title != "title" || question.Contents != "content" {
		t.Error("failed update must not mutate the question")
	}
}

func TestDeleteNoAnswers(t *testing.T) {
	user1, _ := newFixtureUsers()
	question := newFixtureQuestion(user1)

	histories, err := question.Delete(user1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !question.Deleted {
		t.Error("question should be deleted")
	}
	if len(histories) != 1 {
		t.Fatalf("expected 1 history, got %d", len(histories))
	}
	if histories[0].ContentType != ContentTypeQuestion || histories[0].ContentID != question.ID {
		t.Errorf("unexpected history: %+v", histories[0])
	}
	if histories[0].DeletedByID != user1.ID {
		t.Errorf("deletedBy should be the acting user, got %d", histories[0].DeletedByID)
	}
}

func TestDeleteWithOwnAnswers(t *testing.T) {
	user1, _ := newFixtureUsers()
	question := newFixtureQuestion(user1)

	first := NewAnswer(user1, "answer one")
	first.ID = 21
	second := NewAnswer(user1, "answer two")
	second.ID = 22
	question.AddAnswer(first)
	question.AddAnswer(second)

	histories, err := question.Delete(user1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !question.Deleted {
		t.Error("question should be deleted")
	}
	if !first.Deleted || !second.Deleted {
		t.Error("all answers should be deleted by the cascade")
	}
	if len(histories) != 3 {
		t.Fatalf("expected 3 histories, got %d", len(histories))
	}

	want := []struct {
		contentType ContentType
		contentID   uint
	}{
		{ContentTypeAnswer, 21},
		{ContentTypeAnswer, 22},
		{ContentTypeQuestion, 10},
	}
	for i, w := range want {
		if histories[i].ContentType != w.contentType || histories[i].ContentID != w.contentID {
			t.Errorf("history[%d] = {%s %d}, want {%s %d}",
				i, histories[i].ContentType, histories[i].ContentID, w.contentType, w.contentID)
		}
		if histories[i].DeletedByID != user1.ID {
			t.Errorf("history[%d].DeletedByID = %d, want %d", i, histories[i].DeletedByID, user1.ID)
		}
	}
}

// Answers loaded out of order must still produce histories in ascending
// answer-id order.
func TestDeleteHistoryOrderIsAscendingByID(t *testing.T) {
	user1, _ := newFixtureUsers()
	question := newFixtureQuestion(user1)

	late := NewAnswer(user1, "later answer")
	late.ID = 40
	early := NewAnswer(user1, "earlier answer")
	early.ID = 30
	question.AddAnswer(late)
	question.AddAnswer(early)

	histories, err := question.Delete(user1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if histories[0].ContentID != 30 || histories[1].ContentID != 40 {
		t.Errorf("answer histories out of order: %d then %d", histories[0].ContentID, histories[1].ContentID)
	}
	if histories[2].ContentType != ContentTypeQuestion {
		t.Error("question history must come last")
	}
}

func TestDeleteWithOtherUsersAnswer(t *testing.T) {
	user1, user2 := newFixtureUsers()
	question := newFixtureQuestion(user1)

	mine := NewAnswer(user1, "my answer")
	mine.ID = 21
	theirs := NewAnswer(user2, "their answer")
	theirs.ID = 22
	question.AddAnswer(mine)
	question.AddAnswer(theirs)

	_, err := question.Delete(user1)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if question.Deleted {
		t.Error("question must not be deleted")
	}
	if mine.Deleted || theirs.Deleted {
		t.Error("no answer may be deleted when the cascade is refused")
	}
}

func TestDeleteUnauthorized(t *testing.T) {
	user1, user2 := newFixtureUsers()
	question := newFixtureQuestion(user1)

	// Even when every answer belongs to the acting user, a non-writer of the
	// question cannot delete it.
	answer := NewAnswer(user2, "answer")
	answer.ID = 21
	question.AddAnswer(answer)

	_, err := question.Delete(user2)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if question.Deleted || answer.Deleted {
		t.Error("nothing may be mutated")
	}
}

func TestAddAnswer(t *testing.T) {
	user1, user2 := newFixtureUsers()
	question := newFixtureQuestion(user1)

	answer := NewAnswer(user2, "answer")
	answer.ID = 30
	question.AddAnswer(answer)

	if answer.QuestionID != question.ID {
		t.Error("addAnswer should set the back-reference")
	}
	got := question.GetAnswer(30)
	if got == nil || got.Contents != "answer" {
		t.Fatalf("GetAnswer(30) = %+v", got)
	}
	if question.GetAnswer(999) != nil {
		t.Error("GetAnswer with unknown id should return nil")
	}
}
