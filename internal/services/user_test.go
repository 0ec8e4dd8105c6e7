package services

import (
	"errors"
	"testing"

	"github.com/douaasabha91-ops/quiz-project/internal/models"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser("  Alice  ", models.RolePresenter)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Name != "Alice" {
		t.Errorf("name = %q, want trimmed %q", user.Name, "Alice")
	}
	if user.Role != models.RolePresenter {
		t.Errorf("role = %q, want %q", user.Role, models.RolePresenter)
	}

	got, err := svc.GetUser(user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("GetUser name = %q, want %q", got.Name, "Alice")
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	if _, err := svc.CreateUser("", models.RoleParticipant); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := svc.CreateUser("Bob", "admin"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("bad role: err = %v, want ErrInvalidRole", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	if _, err := svc.GetUser(42); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
