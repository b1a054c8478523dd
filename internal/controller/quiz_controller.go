package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/internal/dto"
	"github.com/walnut-pro/sb1-d8pb5s/internal/middleware"
	"github.com/walnut-pro/sb1-d8pb5s/internal/service"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// List godoc
// @Summary List all quizzes with questions and options
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.quizService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// Get godoc
// @Summary Get one quiz with questions and options
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	quiz, err := c.quizService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// Create godoc
// @Summary Create a quiz with nested questions and options
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz with questions and options"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Caller is not an organizer"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	quiz, err := c.quizService.Create(middleware.CurrentUser(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// Update godoc
// @Summary Replace a quiz's metadata and entire question set
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param quiz body dto.QuizCreateDTO true "Quiz with questions and options"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Caller is not an organizer"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	quiz, err := c.quizService.Update(middleware.CurrentUser(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// Delete godoc
// @Summary Delete a quiz and its questions and options
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Caller is not an organizer"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := c.quizService.Delete(middleware.CurrentUser(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Quiz deleted successfully"})
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid ID format"})
		return 0, false
	}
	return uint(id), true
}
