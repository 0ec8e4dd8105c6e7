package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/douaasabha91-ops/quiz-project/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type LaunchSessionRequest struct {
	QuizID uint `json:"quiz_id" binding:"required" example:"1"`
}

// LaunchSession godoc
// @Summary      Launch a quiz session
// @Description  Creates an active session with a fresh 6-character join code
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LaunchSessionRequest true "Session data"
// @Success      201 {object} Session
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions [post]
func (h *SessionHandler) LaunchSession(c *gin.Context) {
	var req LaunchSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.Launch(req.QuizID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSessionByCode godoc
// @Summary      Look up a session by its join code
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Session code"
// @Success      200 {object} Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/code/{code} [get]
func (h *SessionHandler) GetSessionByCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	session, err := h.sessionService.GetByCode(code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListActiveSessions godoc
// @Summary      List active sessions
// @Description  Active sessions with quiz titles, most recent first
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.SessionSummary
// @Router       /api/v1/sessions/active [get]
func (h *SessionHandler) ListActiveSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// EndSession godoc
// @Summary      End a session
// @Description  Transitions the session to inactive; ending an already-ended session is a no-op
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/end [post]
func (h *SessionHandler) EndSession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.End(uint(sessionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
