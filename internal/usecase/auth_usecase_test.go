package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"intern-genie/internal/domain/candidate"
	"intern-genie/internal/pkg/jwt"
	ucauth "intern-genie/internal/usecase/auth"
)

type stubCandidateRepo struct {
	byEmail map[string]candidate.Candidate
	byID    map[int64]candidate.Candidate
}

func (s stubCandidateRepo) GetByID(_ context.Context, id int64) (candidate.Candidate, error) {
	c, ok := s.byID[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (s stubCandidateRepo) GetByEmail(_ context.Context, email string) (candidate.Candidate, error) {
	c, ok := s.byEmail[email]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func newAuthFixture(t *testing.T) (*Auth, jwt.Service) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	c := candidate.Candidate{
		ID:           7,
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Name:         "Test User",
	}

	repo := stubCandidateRepo{
		byEmail: map[string]candidate.Candidate{c.Email: c},
		byID:    map[int64]candidate.Candidate{c.ID: c},
	}

	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)
	return NewAuthUsecase(repo, jwtSvc), jwtSvc
}

func TestAuthLogin_Success(t *testing.T) {
	uc, jwtSvc := newAuthFixture(t)

	c, token, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "User@Example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.PasswordHash != "" {
		t.Fatalf("password hash leaked in login response")
	}
	if c.ID != 7 {
		t.Fatalf("unexpected candidate id %d", c.ID)
	}

	claims, err := jwtSvc.Validate(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.CandidateID != 7 {
		t.Fatalf("token carries wrong candidate id %d", claims.CandidateID)
	}
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, _, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, _, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthRefresh_ReissuesToken(t *testing.T) {
	uc, jwtSvc := newAuthFixture(t)

	_, token, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "user@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login err: %v", err)
	}

	newToken, err := uc.Refresh(context.Background(), token)
	if err != nil {
		t.Fatalf("refresh err: %v", err)
	}

	claims, err := jwtSvc.Validate(newToken)
	if err != nil {
		t.Fatalf("refreshed token does not validate: %v", err)
	}
	if claims.CandidateID != 7 {
		t.Fatalf("refreshed token carries wrong candidate id %d", claims.CandidateID)
	}
}

func TestAuthRefresh_RejectsGarbage(t *testing.T) {
	uc, _ := newAuthFixture(t)

	if _, err := uc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}
