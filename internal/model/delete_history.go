package model

import "time"

type ContentType string

const (
	ContentTypeQuestion ContentType = "QUESTION"
	ContentTypeAnswer   ContentType = "ANSWER"
)

// DeleteHistory is one immutable audit record of a deletion event. Records are
// append-only: they are produced by Question.Delete and Answer.Delete and never
// updated or removed afterwards.
type DeleteHistory struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	ContentType ContentType `json:"content_type" gorm:"size:16;not null;index"`
	ContentID   uint        `json:"content_id" gorm:"not null;index"`
	DeletedByID uint        `json:"deleted_by_id" gorm:"not null;index"`
	DeletedBy   User        `json:"deleted_by,omitempty" gorm:"foreignKey:DeletedByID"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewDeleteHistory records that deletedBy removed the content identified by
// contentType and contentID. DeletedBy is the acting user of the delete call,
// not necessarily the content's writer.
func NewDeleteHistory(contentType ContentType, contentID uint, deletedBy User) DeleteHistory {
	return DeleteHistory{
		ContentType: contentType,
		ContentID:   contentID,
		DeletedByID: deletedBy.ID,
		DeletedBy:   deletedBy,
		CreatedAt:   time.Now(),
	}
}
