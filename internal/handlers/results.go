package handlers

import (
	"net/http"
	"strconv"

	"github.com/douaasabha91-ops/quiz-project/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	resultsService *services.ResultsService
	sessionService *services.SessionService
}

func NewResultsHandler(resultsService *services.ResultsService, sessionService *services.SessionService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService, sessionService: sessionService}
}

// GetTally godoc
// @Summary      Per-answer counts for a question
// @Description  Answer letters nobody picked are omitted
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        questionId path int true "Question ID"
// @Success      200 {array} services.AnswerCount
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/questions/{questionId}/tally [get]
func (h *ResultsHandler) GetTally(c *gin.Context) {
	sessionID, questionID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	tally, err := h.resultsService.Tally(questionID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tally)
}

// GetDetail godoc
// @Summary      Per-participant breakdown for a question
// @Description  Responses with participant names, grouped by answer letter then submission time
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        questionId path int true "Question ID"
// @Success      200 {array} services.ResponseDetail
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/questions/{questionId}/detail [get]
func (h *ResultsHandler) GetDetail(c *gin.Context) {
	sessionID, questionID, ok := h.parseIDs(c)
	if !ok {
		return
	}

	detail, err := h.resultsService.Detail(questionID, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListSessionResponses godoc
// @Summary      All responses in a session
// @Description  Session-wide response feed in submission order, for the presenter results view
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {array} services.SessionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/responses [get]
func (h *ResultsHandler) ListSessionResponses(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	if _, err := h.sessionService.GetSession(uint(sessionID)); err != nil {
		respondError(c, err)
		return
	}

	responses, err := h.resultsService.SessionResponses(uint(sessionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

func (h *ResultsHandler) parseIDs(c *gin.Context) (sessionID, questionID uint, ok bool) {
	sid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return 0, 0, false
	}
	qid, err := strconv.ParseUint(c.Param("questionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return 0, 0, false
	}
	return uint(sid), uint(qid), true
}
