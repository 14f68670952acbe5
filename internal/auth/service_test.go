package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, email, password string) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	return NewService(email, string(hash), NewTokenManager("test-secret"))
}

func TestLogin_Success(t *testing.T) {
	service := newTestService(t, "lore@example.com", "secreto123")

	token, err := service.Login("lore@example.com", "secreto123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	email, role, err := NewTokenManager("test-secret").Validate(token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if email != "lore@example.com" || role != RoleAdmin {
		t.Errorf("unexpected claims: email=%q role=%q", email, role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newTestService(t, "lore@example.com", "secreto123")

	if _, err := service.Login("lore@example.com", "otra-cosa"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongEmail(t *testing.T) {
	service := newTestService(t, "lore@example.com", "secreto123")

	if _, err := service.Login("intruso@example.com", "secreto123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_BlankCredentials(t *testing.T) {
	service := newTestService(t, "lore@example.com", "secreto123")

	if _, err := service.Login("", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate("lore@example.com", RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := NewTokenManager("secret-b").Validate(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}
