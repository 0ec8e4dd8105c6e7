package handlers

import (
	"net/http"
	"strconv"

	"github.com/douaasabha91-ops/quiz-project/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	quizService *services.QuizService
}

func NewQuestionHandler(quizService *services.QuizService) *QuestionHandler {
	return &QuestionHandler{quizService: quizService}
}

type CreateQuestionRequest struct {
	Text          string `json:"text" binding:"required" example:"What color is the sky?"`
	OptionA       string `json:"option_a" binding:"required" example:"Blue"`
	OptionB       string `json:"option_b" binding:"required" example:"Green"`
	OptionC       string `json:"option_c" example:"Red"`
	OptionD       string `json:"option_d" example:""`
	CorrectAnswer string `json:"correct_answer" binding:"required,oneof=A B C D" example:"A"`
}

// CreateQuestion godoc
// @Summary      Add a question to a quiz
// @Description  Options A and B are required; the correct answer must reference a present option
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.quizService.AddQuestion(uint(quizID),
		req.Text, req.OptionA, req.OptionB, req.OptionC, req.OptionD, req.CorrectAnswer)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary      List a quiz's questions in order
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {array} Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	questions, err := h.quizService.ListQuestions(uint(quizID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}
