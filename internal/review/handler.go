package review

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lucystudio/shop-backend/internal/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products/:id<[0-9]+>/reviews", h.listReviews)
	app.Post("/products/:id<[0-9]+>/reviews", h.createReview)
}

func (h *Handler) listReviews(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	items, err := h.service.ListByProduct(productID)
	if err != nil {
		log.Printf("review: list for product %d failed: %v", productID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to list reviews")
	}
	return response.OK(c, items, "Success")
}

func (h *Handler) createReview(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	payload := new(ReviewCreate)
	if err := c.BodyParser(payload); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(payload.UserName) == "" {
		return response.Error(c, fiber.StatusBadRequest, "user_name is required")
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		return response.Error(c, fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	created, err := h.service.Create(productID, *payload)
	if err != nil {
		log.Printf("review: create for product %d failed: %v", productID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to create review")
	}
	return c.Status(fiber.StatusCreated).JSON(response.New(fiber.StatusCreated, "review created", created))
}
