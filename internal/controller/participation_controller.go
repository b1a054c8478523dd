package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/internal/dto"
	"github.com/walnut-pro/sb1-d8pb5s/internal/middleware"
	"github.com/walnut-pro/sb1-d8pb5s/internal/service"
)

type ParticipationController struct {
	participationService service.ParticipationService
}

func NewParticipationController(participationService service.ParticipationService) *ParticipationController {
	return &ParticipationController{participationService: participationService}
}

// Start godoc
// @Summary Start a new attempt at a quiz
// @Tags Participations
// @Accept json
// @Produce json
// @Param participation body dto.ParticipationStartDTO true "Quiz ID"
// @Success 200 {object} dto.ParticipationResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /participations [post]
func (c *ParticipationController) Start(ctx *gin.Context) {
	var req dto.ParticipationStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartParticipation: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	participation, err := c.participationService.Start(middleware.CurrentUser(ctx), req.QuizID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, participation)
}

// ListMine godoc
// @Summary List the caller's participations with quiz and answers
// @Tags Participations
// @Produce json
// @Success 200 {array} dto.ParticipationResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /participations [get]
func (c *ParticipationController) ListMine(ctx *gin.Context) {
	participations, err := c.participationService.ListMine(middleware.CurrentUser(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, participations)
}

// Submit godoc
// @Summary Submit answers for a participation and receive the score
// @Tags Participations
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param submission body dto.ParticipationSubmitDTO true "Submitted answers"
// @Success 200 {object} dto.ParticipationResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Not the owner of the participation"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /participations/{id}/submit [post]
func (c *ParticipationController) Submit(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var req dto.ParticipationSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitParticipation: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	participation, err := c.participationService.Submit(middleware.CurrentUser(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, participation)
}
