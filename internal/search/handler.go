package search

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lucystudio/shop-backend/internal/response"
)

type Handler struct {
	provider TermProvider
}

func NewHandler(provider TermProvider) *Handler {
	return &Handler{provider: provider}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/popular-search-terms", h.getPopularTerms)
}

func (h *Handler) getPopularTerms(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	terms, err := h.provider.Top(limit)
	if err != nil {
		log.Printf("search: popular terms failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load popular terms")
	}
	return response.OK(c, terms, "Success")
}
