package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studybuddy-dev/studybuddy/internal/service"
)

// Every response uses the same envelope: {"success": true, "data": ...}
// with an optional "count" on lists, or {"success": false, "message": ...}.

func respondData(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, gin.H{"success": true, "data": data})
}

func respondWithMessage(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func respondList(ctx *gin.Context, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func respondMessage(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps the service error taxonomy to transport status:
// ValidationError 400, NotFoundError 404, anything else 500 with the detail
// kept server-side.
func respondServiceError(ctx *gin.Context, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		respondError(ctx, http.StatusBadRequest, validationMessage(validationErr))
	case errors.As(err, &notFoundErr):
		respondError(ctx, http.StatusNotFound, notFoundMessage(notFoundErr))
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Request failed")
		respondError(ctx, http.StatusInternalServerError, "Server error")
	}
}

func validationMessage(err *service.ValidationError) string {
	switch err.Reason {
	case service.ReasonMissingField:
		return "Missing required field: " + err.Field
	case service.ReasonInvalidTime:
		return "Invalid timestamp: " + err.Field
	case service.ReasonInvalidTimeRange:
		return "End time must be after start time"
	case service.ReasonInvalidStatus:
		return "Status must be one of pending, completed, cancelled"
	}
	return "Invalid request"
}

func notFoundMessage(err *service.NotFoundError) string {
	switch err.Resource {
	case "subject":
		return "Subject not found"
	case "session":
		return "Study session not found"
	}
	return "Not found"
}
