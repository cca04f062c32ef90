package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Secret:    "test-secret-at-least-32-bytes-long!!",
		Issuer:    "bookwise-test",
		AccessTTL: time.Minute,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestGenerateAndVerify(t *testing.T) {
	m := newTestManager(t)
	userID := uuid.New()

	signed, err := m.Generate(userID, "provider")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.GetUserID() != userID {
		t.Errorf("GetUserID() = %v, want %v", claims.GetUserID(), userID)
	}
	if claims.GetRole() != "provider" {
		t.Errorf("GetRole() = %q, want %q", claims.GetRole(), "provider")
	}
	if claims.IsExpired() {
		t.Error("IsExpired() = true for fresh token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, _ := New(Config{Secret: "a-completely-different-secret-value", Issuer: "bookwise-test"})

	signed, err := m.Generate(uuid.New(), "user")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := other.Verify(signed); err == nil {
		t.Error("Verify() with wrong secret should fail")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Verify("not.a.token")
	var invalid ErrInvalidToken
	if !errors.As(err, &invalid) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New() without secret should fail")
	}
}
