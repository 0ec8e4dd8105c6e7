package services

import (
	"testing"

	"github.com/douaasabha91-ops/quiz-project/internal/database"
	"github.com/douaasabha91-ops/quiz-project/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the same
// TranslateError setting as production, so unique violations surface
// as gorm.ErrDuplicatedKey in tests too. A single connection keeps
// every goroutine on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.AutoMigrate(db)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) *models.User {
	t.Helper()
	user := models.User{Name: name, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %q: %v", name, err)
	}
	return &user
}

func seedQuiz(t *testing.T, db *gorm.DB, createdBy uint, title string) *models.Quiz {
	t.Helper()
	quiz := models.Quiz{Title: title, CreatedBy: createdBy}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz %q: %v", title, err)
	}
	return &quiz
}

func seedQuestion(t *testing.T, db *gorm.DB, quizID uint, text, a, b, c, d, correct string) *models.Question {
	t.Helper()
	question := models.Question{
		QuizID:        quizID,
		Text:          text,
		OptionA:       a,
		OptionB:       b,
		OptionC:       c,
		OptionD:       d,
		CorrectAnswer: correct,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question %q: %v", text, err)
	}
	return &question
}
