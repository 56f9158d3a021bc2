package dto

import "time"

type UserResponseDTO struct {
	ID     uint   `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}

type LoginResponseDTO struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}

type AnswerResponseDTO struct {
	ID         uint            `json:"id"`
	Contents   string          `json:"contents"`
	Writer     UserResponseDTO `json:"writer"`
	QuestionID uint            `json:"question_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// QuestionSummaryDTO is the list view: no answer bodies, just the count.
type QuestionSummaryDTO struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Writer      UserResponseDTO `json:"writer"`
	AnswerCount int             `json:"answer_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type QuestionResponseDTO struct {
	ID        uint                `json:"id"`
	Title     string              `json:"title"`
	Contents  string              `json:"contents"`
	Writer    UserResponseDTO     `json:"writer"`
	Answers   []AnswerResponseDTO `json:"answers,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type DeleteHistoryDTO struct {
	ID          uint            `json:"id"`
	ContentType string          `json:"content_type"`
	ContentID   uint            `json:"content_id"`
	DeletedBy   UserResponseDTO `json:"deleted_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
