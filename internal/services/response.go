package services

import (
	"errors"
	"time"

	"github.com/douaasabha91-ops/quiz-project/internal/models"

	"gorm.io/gorm"
)

type ResponseService struct {
	db *gorm.DB
}

func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{db: db}
}

// Submit records a participant's answer to a question within a
// session. Answers are write-once: a second submission for the same
// (question, user, session) triple fails with ErrAlreadySubmitted.
// Correctness is judged against the question's correct answer at
// submission time and stored on the row.
//
// The existence check below gives the common case a clean error, but
// the composite unique index is the source of truth: a race between
// two concurrent submissions yields exactly one row, and the loser's
// insert surfaces here as ErrAlreadySubmitted.
func (s *ResponseService) Submit(questionID, userID, sessionID uint, answer string) (*models.Response, error) {
	if !validAnswer(answer) {
		return nil, ErrInvalidAnswer
	}

	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var existing models.Response
	err := s.db.Where("question_id = ? AND user_id = ? AND session_id = ?",
		questionID, userID, sessionID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadySubmitted
	}

	response := models.Response{
		QuestionID:  questionID,
		UserID:      userID,
		SessionID:   sessionID,
		Answer:      answer,
		IsCorrect:   answer == question.CorrectAnswer,
		SubmittedAt: time.Now(),
	}
	if err := s.db.Create(&response).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubmitted
		}
		return nil, err
	}
	return &response, nil
}

// GetUserResponse looks up a user's frozen answer for a question in a
// session, so callers can decide between the answer form and the
// already-answered view.
func (s *ResponseService) GetUserResponse(questionID, userID, sessionID uint) (*models.Response, error) {
	var response models.Response
	err := s.db.Where("question_id = ? AND user_id = ? AND session_id = ?",
		questionID, userID, sessionID).First(&response).Error
	if err != nil {
		return nil, ErrResponseNotFound
	}
	return &response, nil
}
