package controller

import (
	"net/http"

	"qnaboard/internal/dto"
	"qnaboard/internal/middleware"
	"qnaboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	qnaService service.QnaService
}

func NewAnswerController(qnaService service.QnaService) *AnswerController {
	return &AnswerController{qnaService: qnaService}
}

// AddAnswer godoc
// @Summary Post an answer to a question
// @Description Adds an answer written by the login user to the question.
// @Tags Answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param answer body dto.AnswerCreateDTO true "Answer contents"
// @Success 201 {object} dto.AnswerResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/answers [post]
func (c *AnswerController) AddAnswer(ctx *gin.Context) {
	loginUser, ok := middleware.LoginUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Login required"})
		return
	}
	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID"})
		return
	}
	var req dto.AnswerCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.qnaService.AddAnswer(loginUser, questionID, req)
	if err != nil {
		respondQnaError(ctx, err, "Failed to add answer")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DeleteAnswer godoc
// @Summary Delete an answer
// @Description Soft-deletes one answer. Only the answer's writer may delete it; one ANSWER history record is produced.
// @Tags Answers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.DeleteHistoryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid answer ID"
// @Failure 403 {object} dto.ErrorResponse "Not the writer"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /answers/{id} [delete]
func (c *AnswerController) DeleteAnswer(ctx *gin.Context) {
	loginUser, ok := middleware.LoginUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Login required"})
		return
	}
	answerID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answer ID"})
		return
	}
	resp, err := c.qnaService.DeleteAnswer(loginUser, answerID)
	if err != nil {
		respondQnaError(ctx, err, "Failed to delete answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
