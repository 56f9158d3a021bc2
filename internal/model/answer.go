package model

import "time"

type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Contents   string    `json:"contents" gorm:"type:text;not null"`
	WriterID   uint      `json:"writer_id" gorm:"not null;index"`
	Writer     User      `json:"writer,omitempty" gorm:"foreignKey:WriterID"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Deleted    bool      `json:"deleted" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewAnswer(writer User, contents string) *Answer {
	return &Answer{Contents: contents, WriterID: writer.ID, Writer: writer}
}

func (a *Answer) IsOwner(user User) bool {
	return a.WriterID == user.ID
}

// ToQuestion associates the answer with its owning question. The association
// is one-way: the answer keeps only the question's id.
func (a *Answer) ToQuestion(question *Question) {
	a.QuestionID = question.ID
}

// Delete marks the answer deleted and returns the audit record. Only the
// answer's own writer may delete it; the question's cascade satisfies this
// precondition structurally, but the check also guards direct calls.
func (a *Answer) Delete(user User) (*DeleteHistory, error) {
	if !a.IsOwner(user) {
		return nil, ErrUnauthorized
	}
	a.Deleted = true
	history := NewDeleteHistory(ContentTypeAnswer, a.ID, user)
	return &history, nil
}
