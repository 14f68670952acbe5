package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const RoleAdmin = "ADMIN"

// Service authenticates the restaurant's single back-office admin.
// The credentials come from configuration; there is no user table and
// no registration.
type Service struct {
	adminEmail        string
	adminPasswordHash string
	tokens            *TokenManager
}

func NewService(adminEmail, adminPasswordHash string, tokens *TokenManager) *Service {
	return &Service{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		tokens:            tokens,
	}
}

// Login checks the credentials and returns a signed token.
func (s *Service) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if email != s.adminEmail {
		return "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(s.adminPasswordHash),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Generate(email, RoleAdmin)
}
