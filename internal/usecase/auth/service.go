package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"intern-genie/internal/domain/candidate"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
)

type LoginInput struct {
	Email    string
	Password string
}

// Service verifies credentials against the candidate store. Token issuance
// lives one layer up.
type Service struct {
	candidates candidate.Repository
}

func NewService(candidates candidate.Repository) *Service {
	return &Service{candidates: candidates}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (candidate.Candidate, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return candidate.Candidate{}, ErrInvalidCredentials
	}

	c, err := s.candidates.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Candidate{}, ErrInvalidCredentials
		}
		return candidate.Candidate{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)); err != nil {
		return candidate.Candidate{}, ErrInvalidCredentials
	}

	return c.Sanitized(), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}
