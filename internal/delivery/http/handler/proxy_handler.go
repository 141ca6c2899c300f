package handler

import (
	"net/http"

	"intern-genie/internal/delivery/http/middleware"
	"intern-genie/internal/infrastructure/upstream"

	"github.com/gofiber/fiber/v3"
)

// ProxyHandler relays unmatched API traffic to the secondary backend verbatim.
type ProxyHandler struct {
	client upstream.Client
}

func NewProxyHandler(client upstream.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

func (h *ProxyHandler) RegisterRoutes(r fiber.Router) {
	r.All("/proxy/*", h.Forward)
}

func (h *ProxyHandler) Forward(c fiber.Ctx) error {
	if h.client == nil {
		return middleware.NewAppError(fiber.StatusBadGateway, "Upstream service unavailable", nil, nil)
	}

	header := make(http.Header)
	c.Request().Header.VisitAll(func(key, value []byte) {
		header.Add(string(key), string(value))
	})

	path := c.Params("*")
	rawQuery := string(c.Request().URI().QueryString())

	res, err := h.client.Forward(c.Context(), c.Method(), path, rawQuery, header, c.Body())
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadGateway, "Upstream request failed", nil, err)
	}

	if res.ContentType != "" {
		c.Set(fiber.HeaderContentType, res.ContentType)
	}
	return c.Status(res.StatusCode).Send(res.Body)
}
