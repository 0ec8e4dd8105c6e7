package services

import (
	"errors"
	"strings"

	"github.com/douaasabha91-ops/quiz-project/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

func (s *QuizService) CreateQuiz(createdBy uint, title string) (*models.Quiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	var creator models.User
	if err := s.db.First(&creator, createdBy).Error; err != nil {
		return nil, ErrUserNotFound
	}

	quiz := models.Quiz{
		Title:     title,
		CreatedBy: createdBy,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (s *QuizService) GetQuiz(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		return nil, ErrQuizNotFound
	}
	return &quiz, nil
}

// AddQuestion appends a question to a quiz. Options A and B are
// mandatory, C and D optional; the correct answer letter must point at
// an option that is actually present. Questions are immutable once
// created.
func (s *QuizService) AddQuestion(quizID uint, text, optionA, optionB, optionC, optionD, correctAnswer string) (*models.Question, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	text = strings.TrimSpace(text)
	optionA = strings.TrimSpace(optionA)
	optionB = strings.TrimSpace(optionB)
	optionC = strings.TrimSpace(optionC)
	optionD = strings.TrimSpace(optionD)

	if text == "" || optionA == "" || optionB == "" {
		return nil, errors.New("question text and options A and B are required")
	}
	if !validAnswer(correctAnswer) {
		return nil, ErrInvalidAnswer
	}

	question := models.Question{
		QuizID:        quizID,
		Text:          text,
		OptionA:       optionA,
		OptionB:       optionB,
		OptionC:       optionC,
		OptionD:       optionD,
		CorrectAnswer: correctAnswer,
	}
	if question.Option(correctAnswer) == "" {
		return nil, ErrInvalidCorrectAnswer
	}

	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// ListQuestions returns a quiz's questions in insertion order.
func (s *QuizService) ListQuestions(quizID uint) ([]models.Question, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	var questions []models.Question
	err := s.db.Where("quiz_id = ?", quizID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuizService) GetQuestion(questionID uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return nil, ErrQuestionNotFound
	}
	return &question, nil
}

func validAnswer(answer string) bool {
	switch answer {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
