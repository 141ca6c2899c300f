package handler

import (
	"errors"
	"strconv"

	"intern-genie/internal/delivery/http/dto"
	"intern-genie/internal/delivery/http/middleware"
	"intern-genie/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(int64)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	// Unparsable query values fall back to the defaults rather than failing
	// the request.
	limit := usecase.DefaultRecommendationLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	useCache := true
	if raw := c.Query("use_cache"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			useCache = v
		}
	}

	result, err := h.uc.GetRecommendations(c.Context(), candidateID, usecase.RecommendationParams{
		Limit:    limit,
		UseCache: useCache,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCandidateNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
		case errors.Is(err, usecase.ErrMalformedProfile):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Candidate profile is malformed", nil, err)
		case errors.Is(err, usecase.ErrMalformedPosting):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Internship posting is malformed", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to generate recommendations", nil, err)
	}

	return c.JSON(dto.NewRecommendationResponse(result))
}
