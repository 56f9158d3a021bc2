package controller

import (
	"errors"
	"net/http"
	"strconv"

	"qnaboard/internal/dto"
	"qnaboard/internal/middleware"
	"qnaboard/internal/model"
	"qnaboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionController struct {
	qnaService service.QnaService
}

func NewQuestionController(qnaService service.QnaService) *QuestionController {
	return &QuestionController{qnaService: qnaService}
}

// CreateQuestion godoc
// @Summary Post a new question
// @Description Creates a question written by the login user.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Title and contents"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Not logged in"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	loginUser, ok := middleware.LoginUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Login required"})
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.qnaService.CreateQuestion(loginUser, req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuestion: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetQuestions godoc
// @Summary List live questions
// @Description Lists non-deleted questions with their live answer counts.
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.QuestionSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	questions, err := c.qnaService.GetQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary Get one question with its answers
// @Description Returns the question and its live answers in ascending id order.
// @Tags Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID"})
		return
	}
	resp, err := c.qnaService.GetQuestion(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Replaces title and contents. Only the writer may update.
// @Tags Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionCreateDTO true "New title and contents"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not the writer"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	loginUser, ok := middleware.LoginUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Login required"})
		return
	}
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID"})
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.qnaService.UpdateQuestion(loginUser, id, req)
	if err != nil {
		respondQnaError(ctx, err, "Failed to update question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Soft-deletes the question and cascades over its answers. Allowed only for the writer, and only while every live answer is the writer's own. Returns the deletion histories in answer-then-question order.
// @Tags Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {array} dto.DeleteHistoryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question ID"
// @Failure 403 {object} dto.ErrorResponse "Delete not permitted"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	loginUser, ok := middleware.LoginUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Login required"})
		return
	}
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID"})
		return
	}
	histories, err := c.qnaService.DeleteQuestion(loginUser, id)
	if err != nil {
		respondQnaError(ctx, err, "Failed to delete question")
		return
	}
	ctx.JSON(http.StatusOK, histories)
}

// GetDeleteHistories godoc
// @Summary List deletion histories
// @Description Returns the append-only audit trail of question and answer deletions.
// @Tags Histories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DeleteHistoryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /deleted-histories [get]
func (c *QuestionController) GetDeleteHistories(ctx *gin.Context) {
	histories, err := c.qnaService.GetDeleteHistories()
	if err != nil {
		log.Error().Err(err).Msg("GetDeleteHistories: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve histories"})
		return
	}
	ctx.JSON(http.StatusOK, histories)
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// respondQnaError maps domain errors to HTTP: ownership refusals are 403,
// missing rows 404, anything else 500.
func respondQnaError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You are not allowed to modify this content"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Content not found"})
	default:
		log.Error().Err(err).Msg(fallback)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
	}
}
