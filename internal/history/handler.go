package history

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lucystudio/shop-backend/internal/identity"
	"github.com/lucystudio/shop-backend/internal/product"
	"github.com/lucystudio/shop-backend/internal/response"
)

// Handler serves the recent-views listing. Products are resolved through the
// product service so the view rows stay id-only.
type Handler struct {
	service   *Service
	products  *product.Service
	formatter *product.Formatter
}

func NewHandler(service *Service, products *product.Service, formatter *product.Formatter) *Handler {
	return &Handler{service: service, products: products, formatter: formatter}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/products-recent-views", h.getRecentViews)
}

func (h *Handler) getRecentViews(c *fiber.Ctx) error {
	userID := identity.UserID(c)
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}

	ids, err := h.service.RecentProductIDs(userID, limit)
	if err != nil {
		log.Printf("history: recent views for user %d failed: %v", userID, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load recent views")
	}

	var products []product.Product
	if len(ids) > 0 {
		products, err = h.products.ListByIDs(ids)
	} else {
		// no view history yet: surface the newest products instead
		products, err = h.products.Latest(limit)
	}
	if err != nil {
		log.Printf("history: product resolution failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load recent views")
	}

	return response.OK(c, h.formatter.ApplyAll(products), "Success")
}
