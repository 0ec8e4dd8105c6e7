package services

import (
	"time"

	"github.com/douaasabha91-ops/quiz-project/internal/models"

	"gorm.io/gorm"
)

// ResultsService is a read-only projection over the response ledger.
// Sessions are live and presenters poll, so every call reads the
// ledger directly with no caching.
type ResultsService struct {
	db *gorm.DB
}

func NewResultsService(db *gorm.DB) *ResultsService {
	return &ResultsService{db: db}
}

// Tally counts responses per answer letter for one question in one
// session. Letters nobody picked are omitted; zero-filling A-D is the
// chart's job.
func (s *ResultsService) Tally(questionID, sessionID uint) ([]AnswerCount, error) {
	var rows []AnswerCount
	err := s.db.Model(&models.Response{}).
		Select("answer, COUNT(*) as count").
		Where("question_id = ? AND session_id = ?", questionID, sessionID).
		Group("answer").
		Order("answer ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Detail lists every response to a question in a session with the
// participant's name, grouped by answer letter and then by submission
// time.
func (s *ResultsService) Detail(questionID, sessionID uint) ([]ResponseDetail, error) {
	var rows []ResponseDetail
	err := s.db.Model(&models.Response{}).
		Select("responses.answer, users.name AS participant_name, responses.is_correct, responses.submitted_at").
		Joins("JOIN users ON users.id = responses.user_id").
		Where("responses.question_id = ? AND responses.session_id = ?", questionID, sessionID).
		Order("responses.answer ASC, responses.submitted_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SessionResponses returns the full response feed for a session in
// submission order, with user and question context for the presenter's
// results view.
func (s *ResultsService) SessionResponses(sessionID uint) ([]SessionResponse, error) {
	var rows []SessionResponse
	err := s.db.Model(&models.Response{}).
		Select("responses.id, responses.question_id, questions.text AS question_text, users.name AS user_name, responses.answer, responses.is_correct, responses.submitted_at").
		Joins("JOIN users ON users.id = responses.user_id").
		Joins("JOIN questions ON questions.id = responses.question_id").
		Where("responses.session_id = ?", sessionID).
		Order("responses.submitted_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type AnswerCount struct {
	Answer string `json:"answer"`
	Count  int    `json:"count"`
}

type ResponseDetail struct {
	Answer          string    `json:"answer"`
	ParticipantName string    `json:"participant_name"`
	IsCorrect       bool      `json:"is_correct"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type SessionResponse struct {
	ID           uint      `json:"id"`
	QuestionID   uint      `json:"question_id"`
	QuestionText string    `json:"question_text"`
	UserName     string    `json:"user_name"`
	Answer       string    `json:"answer"`
	IsCorrect    bool      `json:"is_correct"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
