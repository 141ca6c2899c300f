package usecase

import (
	"context"
	"errors"

	"intern-genie/internal/domain/candidate"
	"intern-genie/internal/pkg/jwt"
	ucauth "intern-genie/internal/usecase/auth"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (candidate.Candidate, string, error)
	Refresh(ctx context.Context, token string) (string, error)
}

type Auth struct {
	authSvc    *ucauth.Service
	candidates candidate.Repository
	jwt        jwt.Service
}

func NewAuthUsecase(candidates candidate.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(candidates), candidates: candidates, jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (candidate.Candidate, string, error) {
	c, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return candidate.Candidate{}, "", err
	}

	token, err := u.jwt.Generate(c.ID, c.Email)
	if err != nil {
		return candidate.Candidate{}, "", ErrInternal
	}

	return c, token, nil
}

// Refresh reissues a token for the holder of a still-valid one.
func (u *Auth) Refresh(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	claims, err := u.jwt.Validate(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	c, err := u.candidates.GetByID(ctx, claims.CandidateID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", ErrInternal
	}

	newToken, err := u.jwt.Generate(c.ID, c.Email)
	if err != nil {
		return "", ErrInternal
	}

	return newToken, nil
}

var _ AuthUsecase = (*Auth)(nil)
