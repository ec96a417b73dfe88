package qa

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
	app.Get("/products/:id<[0-9]+>/questions", h.listQuestions)
	app.Post("/products/:id<[0-9]+>/questions", h.createQuestion)
}

func (h *Handler) listQuestions(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	items, err := h.service.ListByProduct(productID)
	if err != nil {
		log.Printf("qa: list for product %d failed: %v", productID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to list questions")
	}
	return response.OK(c, items, "Success")
}

func (h *Handler) createQuestion(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	payload := new(QACreate)
	if err := c.BodyParser(payload); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(payload.Question) == "" {
		return response.Error(c, fiber.StatusBadRequest, "question is required")
	}
	if strings.TrimSpace(payload.UserName) == "" {
		return response.Error(c, fiber.StatusBadRequest, "user_name is required")
	}

	created, err := h.service.Create(productID, *payload)
	if err != nil {
		log.Printf("qa: create for product %d failed: %v", productID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to create question")
	}
	return c.Status(fiber.StatusCreated).JSON(response.New(fiber.StatusCreated, "question created", created))
}
