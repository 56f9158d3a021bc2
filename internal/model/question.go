package model

import (
	"sort"
	"time"
)

// Question is the aggregate root of the board. Answers holds only live
// (non-deleted) answers in ascending id order; the repository loads them that
// way, mirroring the soft-delete filter on reads.
type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Contents  string    `json:"contents" gorm:"type:text;not null"`
	WriterID  uint      `json:"writer_id" gorm:"not null;index"`
	Writer    User      `json:"writer,omitempty" gorm:"foreignKey:WriterID"`
	Answers   []*Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	Deleted   bool      `json:"deleted" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewQuestion(title, contents string) *Question {
	return &Question{Title: title, Contents: contents}
}

// WriteBy sets the question's writer. Called once at creation; the writer
// never changes afterwards.
func (q *Question) WriteBy(user User) {
	q.WriterID = user.ID
	q.Writer = user
}

func (q *Question) IsOwner(user User) bool {
	return q.WriterID == user.ID
}

// Update replaces title and contents. Only the writer may update; on a
// mismatch nothing is mutated.
func (q *Question) Update(user User, updated Question) (*Question, error) {
	if !q.IsOwner(user) {
		return nil, ErrUnauthorized
	}
	q.Title = updated.Title
	q.Contents = updated.Contents
	return q, nil
}

// Delete soft-deletes the question and cascades over its live answers.
//
// The question is deletable only by its writer, and only while every live
// answer also belongs to that user (a question with no answers trivially
// qualifies). If any live answer was written by someone else the whole call
// fails and neither the question nor any answer is touched.
//
// On success every live answer is deleted in ascending id order, then the
// question itself, and the returned histories follow the same order: one
// record per answer, then one QUESTION record. N live answers always yield
// N+1 records.
func (q *Question) Delete(user User) ([]DeleteHistory, error) {
	if !q.IsOwner(user) {
		return nil, ErrUnauthorized
	}
	ownAnswerCount := 0
	for _, answer := range q.Answers {
		if answer.IsOwner(user) {
			ownAnswerCount++
		}
	}
	if ownAnswerCount != len(q.Answers) {
		return nil, ErrUnauthorized
	}

	answers := make([]*Answer, len(q.Answers))
	copy(answers, q.Answers)
	sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })

	histories := make([]DeleteHistory, 0, len(answers)+1)
	for _, answer := range answers {
		history, err := answer.Delete(user)
		if err != nil {
			return nil, err
		}
		histories = append(histories, *history)
	}
	q.Deleted = true
	histories = append(histories, NewDeleteHistory(ContentTypeQuestion, q.ID, user))
	return histories, nil
}

// AddAnswer appends the answer to the live answers after wiring its
// back-reference. Authorization for creating an answer is the caller's
// concern.
func (q *Question) AddAnswer(answer *Answer) *Answer {
	answer.ToQuestion(q)
	q.Answers = append(q.Answers, answer)
	return answer
}

// GetAnswer returns the live answer with the given id, or nil when absent.
func (q *Question) GetAnswer(id uint) *Answer {
	for _, answer := range q.Answers {
		if answer.ID == id {
			return answer
		}
	}
	return nil
}
