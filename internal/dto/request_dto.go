package dto

type UserCreateDTO struct {
	UserID   string `json:"user_id" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=4"`
	Name     string `json:"name" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type LoginDTO struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// QuestionCreateDTO carries the title/contents payload for both creation and
// update. Length rules are enforced here at the boundary; the domain model
// assumes well-formed input.
type QuestionCreateDTO struct {
	Title    string `json:"title" binding:"required,min=3,max=100"`
	Contents string `json:"contents" binding:"required,min=3"`
}

type AnswerCreateDTO struct {
	Contents string `json:"contents" binding:"required,min=3"`
}
