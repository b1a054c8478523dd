package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/walnut-pro/sb1-d8pb5s/internal/apperror"
	"github.com/walnut-pro/sb1-d8pb5s/internal/dto"
)

// respondError maps domain errors to 4xx responses. Anything unrecognized is
// logged and collapsed to a generic 500 with no detail leaked to the caller.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrDuplicateUser):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User already exists"})
	case errors.Is(err, apperror.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperror.ErrIdentityProvider):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperror.ErrQuizNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Quiz not found"})
	case errors.Is(err, apperror.ErrParticipationNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Participation not found"})
	case errors.Is(err, apperror.ErrAlreadyFinished):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Participation already finished"})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
	}
}
