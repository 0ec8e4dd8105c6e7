package handlers

import (
	"errors"
	"net/http"

	"github.com/douaasabha91-ops/quiz-project/internal/models"
	"github.com/douaasabha91-ops/quiz-project/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Quiz = models.Quiz
type Question = models.Question
type Session = models.Session
type Response = models.Response

// respondError maps the service error taxonomy to HTTP status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrQuizNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrResponseNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAlreadySubmitted):
		status = http.StatusConflict
	case errors.Is(err, services.ErrCodeSpaceExhausted):
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
