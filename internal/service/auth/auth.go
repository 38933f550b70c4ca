// Package auth checks the single static farm owner credential.
package auth

import (
	"crypto/subtle"
	"errors"

	"github.com/mamadbah2/khamar/internal/config"
)

// ErrInvalidCredentials is returned when the username or password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service validates login attempts against the configured credential.
type Service struct {
	username []byte
	password []byte
}

// NewService builds an authenticator for cfg.
func NewService(cfg config.AuthConfig) *Service {
	return &Service{username: []byte(cfg.Username), password: []byte(cfg.Password)}
}

// Authenticate compares both values in constant time.
func (s *Service) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), s.username)
	passOK := subtle.ConstantTimeCompare([]byte(password), s.password)
	if userOK&passOK != 1 || len(s.password) == 0 {
		return ErrInvalidCredentials
	}
	return nil
}
