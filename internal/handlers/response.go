package handlers

import (
	"net/http"
	"strconv"

	"github.com/douaasabha91-ops/quiz-project/internal/services"

	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	responseService *services.ResponseService
}

func NewResponseHandler(responseService *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseService: responseService}
}

type SubmitResponseRequest struct {
	QuestionID uint   `json:"question_id" binding:"required" example:"1"`
	Answer     string `json:"answer" binding:"required,oneof=A B C D" example:"A"`
}

// SubmitResponse godoc
// @Summary      Submit an answer
// @Description  Records a write-once answer for the authenticated user; resubmitting returns 409
// @Tags         responses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body SubmitResponseRequest true "Answer data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/responses [post]
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	userID := c.GetUint("user_id")

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	response, err := h.responseService.Submit(req.QuestionID, userID, uint(sessionID), req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetMyResponse godoc
// @Summary      Get the authenticated user's answer to a question
// @Description  404 means the user has not answered yet and should see the answer form
// @Tags         responses
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        questionId path int true "Question ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/questions/{questionId}/response [get]
func (h *ResponseHandler) GetMyResponse(c *gin.Context) {
	userID := c.GetUint("user_id")

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}
	questionID, err := strconv.ParseUint(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	response, err := h.responseService.GetUserResponse(uint(questionID), userID, uint(sessionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
