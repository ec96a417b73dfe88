package ranking

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lucystudio/shop-backend/internal/product"
	"github.com/lucystudio/shop-backend/internal/response"
)

type Handler struct {
	service   *Service
	formatter *product.Formatter
}

func NewHandler(service *Service, formatter *product.Formatter) *Handler {
	return &Handler{service: service, formatter: formatter}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products-ranking", h.getRanking)
}

func (h *Handler) getRanking(c *fiber.Ctx) error {
	products, err := h.service.Top()
	if err != nil {
		log.Printf("ranking: list failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load ranking")
	}
	return response.OK(c, h.formatter.ApplyAll(products), "Success")
}
