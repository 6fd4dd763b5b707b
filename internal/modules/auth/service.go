package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"hallbook/internal/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service implements the single-operator login. There is one admin
// account, configured at startup; no user table exists.
type Service struct {
	username     string
	passwordHash []byte
	tokens       *jwt.Service
}

func NewService(username, password string, tokens *jwt.Service) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &Service{
		username:     username,
		passwordHash: hash,
		tokens:       tokens,
	}, nil
}

func (s *Service) Login(username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateToken(username, "admin")
}
