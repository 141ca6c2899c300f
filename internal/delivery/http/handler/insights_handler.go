package handler

import (
	"strconv"

	"intern-genie/internal/delivery/http/dto"
	"intern-genie/internal/delivery/http/middleware"
	"intern-genie/internal/usecase/insights"

	"github.com/gofiber/fiber/v3"
)

type InsightsHandler struct {
	svc *insights.Service
}

func NewInsightsHandler(svc *insights.Service) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

// RegisterRoutes splits the surface: user insights require an authenticated
// candidate, the market-wide views do not.
func (h *InsightsHandler) RegisterRoutes(public fiber.Router, protected fiber.Router) {
	protected.Get("/user-insights", h.UserInsights)
	public.Get("/market-insights", h.MarketInsights)
	public.Get("/collaborative-insights", h.CollaborativeInsights)
	public.Get("/trending-skills", h.TrendingSkills)
}

func (h *InsightsHandler) UserInsights(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(int64)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	in, err := h.svc.UserInsights(c.Context(), candidateID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to generate user insights", nil, err)
	}

	return c.JSON(dto.NewUserInsightsResponse(in))
}

func (h *InsightsHandler) MarketInsights(c fiber.Ctx) error {
	in, err := h.svc.MarketInsights(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to generate market insights", nil, err)
	}

	return c.JSON(dto.NewMarketInsightsResponse(in))
}

func (h *InsightsHandler) CollaborativeInsights(c fiber.Ctx) error {
	in, err := h.svc.CollaborativeInsights(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to generate collaborative insights", nil, err)
	}

	return c.JSON(dto.NewCollaborativeInsightsResponse(in))
}

func (h *InsightsHandler) TrendingSkills(c fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	skills, err := h.svc.TrendingSkills(c.Context(), limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch trending skills", nil, err)
	}

	return c.JSON(dto.NewTrendingSkillsResponse(skills))
}
