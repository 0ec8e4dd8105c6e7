package services

import (
	"testing"

	"github.com/douaasabha91-ops/quiz-project/internal/models"
)

func TestLoginIssuesValidToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(NewUserService(db), "test-secret")

	user, token, err := svc.Login("Alice", models.RoleParticipant)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, role, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != user.ID || role != models.RoleParticipant {
		t.Errorf("token claims = (%d, %s), want (%d, %s)", userID, role, user.ID, models.RoleParticipant)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(NewUserService(db), "test-secret")

	if _, _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}

	other := NewAuthService(NewUserService(db), "other-secret")
	_, token, err := other.Login("Mallory", models.RoleParticipant)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, _, err := svc.ValidateToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}
