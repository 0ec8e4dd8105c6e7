package services

import (
	"errors"
	"time"

	"github.com/douaasabha91-ops/quiz-project/internal/models"

	"gorm.io/gorm"
)

// maxCodeAttempts bounds the launch retry loop. Collisions are ~1 in
// 2.2 billion per attempt, so hitting the bound means something is
// badly wrong with the code space.
const maxCodeAttempts = 20

type SessionService struct {
	db      *gorm.DB
	newCode func() string
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db, newCode: GenerateCode}
}

// Launch creates an active session for a quiz under a fresh code.
// Each attempt is a single insert; the unique index on session_code is
// the arbiter, so two concurrent launches colliding on a code resolve
// to one winner and one retry.
func (s *SessionService) Launch(quizID uint) (*models.Session, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	var questionCount int64
	s.db.Model(&models.Question{}).Where("quiz_id = ?", quizID).Count(&questionCount)
	if questionCount == 0 {
		return nil, ErrEmptyQuiz
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		session := models.Session{
			QuizID:      quizID,
			SessionCode: s.newCode(),
			IsActive:    true,
		}
		err := s.db.Create(&session).Error
		if err == nil {
			s.db.Preload("Quiz").First(&session, session.ID)
			return &session, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, err
	}
	return nil, ErrCodeSpaceExhausted
}

func (s *SessionService) GetSession(sessionID uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.Preload("Quiz").First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionService) GetByCode(code string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Preload("Quiz").
		Where("session_code = ?", code).
		First(&session).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionService) ListActive() ([]SessionSummary, error) {
	var sessions []models.Session
	err := s.db.Where("is_active = ?", true).
		Preload("Quiz").
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	result := make([]SessionSummary, len(sessions))
	for i, sess := range sessions {
		result[i] = SessionSummary{
			ID:          sess.ID,
			QuizID:      sess.QuizID,
			QuizTitle:   sess.Quiz.Title,
			SessionCode: sess.SessionCode,
			IsActive:    sess.IsActive,
			CreatedAt:   sess.CreatedAt,
		}
	}
	return result, nil
}

// End transitions a session to inactive and stamps EndedAt. Ending an
// already-ended session is a no-op; nothing ever flips a session back
// to active.
func (s *SessionService) End(sessionID uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.First(&session, sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}

	if session.IsActive {
		now := time.Now()
		err := s.db.Model(&session).Updates(map[string]interface{}{
			"is_active": false,
			"ended_at":  now,
		}).Error
		if err != nil {
			return nil, err
		}
		session.IsActive = false
		session.EndedAt = &now
	}
	return &session, nil
}

type SessionSummary struct {
	ID          uint      `json:"id"`
	QuizID      uint      `json:"quiz_id"`
	QuizTitle   string    `json:"quiz_title"`
	SessionCode string    `json:"session_code"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
