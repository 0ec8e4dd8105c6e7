package services

import (
	"errors"
	"testing"
	"time"

	"github.com/douaasabha91-ops/quiz-project/internal/models"

	"gorm.io/gorm"
)

func launchableQuiz(t *testing.T, db *gorm.DB) *models.Quiz {
	t.Helper()
	presenter := seedUser(t, db, "Pat", models.RolePresenter)
	quiz := seedQuiz(t, db, presenter.ID, "Colors")
	seedQuestion(t, db, quiz.ID, "Sky?", "Blue", "Green", "", "", "A")
	return quiz
}

func TestLaunch(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	quiz := launchableQuiz(t, db)

	session, err := svc.Launch(quiz.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if len(session.SessionCode) != 6 {
		t.Errorf("code %q has length %d, want 6", session.SessionCode, len(session.SessionCode))
	}
	if !session.IsActive {
		t.Error("new session not active")
	}
	if session.EndedAt != nil {
		t.Error("new session has EndedAt set")
	}
	if session.Quiz.Title != "Colors" {
		t.Errorf("quiz not preloaded, title = %q", session.Quiz.Title)
	}
}

func TestLaunchEmptyQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	presenter := seedUser(t, db, "Pat", models.RolePresenter)
	quiz := seedQuiz(t, db, presenter.ID, "Empty")

	if _, err := svc.Launch(quiz.ID); !errors.Is(err, ErrEmptyQuiz) {
		t.Fatalf("err = %v, want ErrEmptyQuiz", err)
	}

	var count int64
	db.Model(&models.Session{}).Count(&count)
	if count != 0 {
		t.Errorf("%d session rows created for an empty quiz", count)
	}
}

func TestLaunchUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)

	if _, err := svc.Launch(123); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestLaunchRetriesOnCodeCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	quiz := launchableQuiz(t, db)

	taken := models.Session{QuizID: quiz.ID, SessionCode: "TAKEN1", IsActive: true}
	if err := db.Create(&taken).Error; err != nil {
		t.Fatalf("seed taken code: %v", err)
	}

	codes := []string{"TAKEN1", "TAKEN1", "FRESH2"}
	svc.newCode = func() string {
		code := codes[0]
		if len(codes) > 1 {
			codes = codes[1:]
		}
		return code
	}

	session, err := svc.Launch(quiz.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if session.SessionCode != "FRESH2" {
		t.Errorf("code = %q, want the retried %q", session.SessionCode, "FRESH2")
	}
}

func TestLaunchCodeSpaceExhausted(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	quiz := launchableQuiz(t, db)

	taken := models.Session{QuizID: quiz.ID, SessionCode: "STUCK0", IsActive: true}
	if err := db.Create(&taken).Error; err != nil {
		t.Fatalf("seed taken code: %v", err)
	}
	svc.newCode = func() string { return "STUCK0" }

	if _, err := svc.Launch(quiz.ID); !errors.Is(err, ErrCodeSpaceExhausted) {
		t.Fatalf("err = %v, want ErrCodeSpaceExhausted", err)
	}
}

func TestCodeUniquenessAcrossLaunches(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	quiz := launchableQuiz(t, db)

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		session, err := svc.Launch(quiz.ID)
		if err != nil {
			t.Fatalf("Launch %d: %v", i, err)
		}
		if seen[session.SessionCode] {
			t.Fatalf("code %q issued twice", session.SessionCode)
		}
		seen[session.SessionCode] = true
	}
}

func TestGetByCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	quiz := launchableQuiz(t, db)

	session, err := svc.Launch(quiz.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}

	got, err := svc.GetByCode(session.SessionCode)
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if got.ID != session.ID {
		t.Errorf("got session %d, want %d", got.ID, session.ID)
	}

	if _, err := svc.GetByCode("NOPE99"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestListActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	quiz := launchableQuiz(t, db)

	first, err := svc.Launch(quiz.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	second, err := svc.Launch(quiz.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	ended, err := svc.Launch(quiz.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}

	// Spread creation times so the DESC ordering is observable.
	base := time.Now().Add(-time.Hour)
	db.Model(&models.Session{}).Where("id = ?", first.ID).Update("created_at", base)
	db.Model(&models.Session{}).Where("id = ?", second.ID).Update("created_at", base.Add(time.Minute))
	db.Model(&models.Session{}).Where("id = ?", ended.ID).Update("created_at", base.Add(2*time.Minute))

	if _, err := svc.End(ended.ID); err != nil {
		t.Fatalf("End: %v", err)
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("got %d active sessions, want 2", len(active))
	}
	if active[0].ID != second.ID || active[1].ID != first.ID {
		t.Errorf("order = [%d %d], want most recent first [%d %d]",
			active[0].ID, active[1].ID, second.ID, first.ID)
	}
	if active[0].QuizTitle != "Colors" {
		t.Errorf("quiz title = %q, want %q", active[0].QuizTitle, "Colors")
	}
}

func TestEndIsIdempotentAndMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)
	quiz := launchableQuiz(t, db)

	session, err := svc.Launch(quiz.ID)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}

	ended, err := svc.End(session.ID)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if ended.IsActive {
		t.Error("session still active after End")
	}
	if ended.EndedAt == nil {
		t.Fatal("EndedAt not set")
	}

	stored, err := svc.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if stored.EndedAt == nil {
		t.Fatal("EndedAt not persisted")
	}
	firstEndedAt := *stored.EndedAt

	again, err := svc.End(session.ID)
	if err != nil {
		t.Fatalf("second End: %v", err)
	}
	if again.IsActive {
		t.Error("session reactivated by second End")
	}
	if again.EndedAt == nil || !again.EndedAt.Equal(firstEndedAt) {
		t.Errorf("EndedAt changed on second End: %v, want %v", again.EndedAt, firstEndedAt)
	}

	got, err := svc.GetByCode(session.SessionCode)
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if got.IsActive {
		t.Error("GetByCode reports ended session as active")
	}
}

func TestEndUnknownSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(db)

	if _, err := svc.End(55); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}
