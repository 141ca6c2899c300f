package handler

import (
	"errors"

	"intern-genie/internal/delivery/http/dto"
	"intern-genie/internal/delivery/http/middleware"
	"intern-genie/internal/usecase"
	ucauth "intern-genie/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if req.Email == "" || req.Password == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Email and password are required", nil, nil)
	}

	cand, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Login failed", nil, err)
	}

	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.NewUserInfo(cand),
		Message: "Login successful",
	})
}

// Refresh reissues a token for the bearer of a still-valid one.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	token, ok := middleware.BearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	newToken, err := h.uc.Refresh(c.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTokenExpired):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case errors.Is(err, usecase.ErrInvalidToken):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Token refresh failed", nil, err)
	}

	return c.JSON(dto.RefreshResponse{
		Success: true,
		Token:   newToken,
		Message: "Token refreshed successfully",
	})
}
