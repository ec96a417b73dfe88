package product

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lucystudio/shop-backend/internal/response"
)

type Handler struct {
	service   *Service
	formatter *Formatter
}

func NewHandler(service *Service, formatter *Formatter) *Handler {
	return &Handler{service: service, formatter: formatter}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// /products/all must precede /products/:id so the literal wins.
	app.Get("/products/all", h.getAllProducts)
	app.Get("/products/:id<[0-9]+>", h.getProduct)
	app.Get("/products", h.getProducts)
	app.Get("/products-favorites", h.getFavoriteProducts)
	app.Get("/products-search", h.searchProducts)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/products", h.createProduct)
	app.Put("/products/:id<[0-9]+>", h.updateProduct)
	app.Delete("/products/:id<[0-9]+>", h.deleteProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	opts := ListOptions{
		Offset:   c.QueryInt("offset", 0),
		Limit:    c.QueryInt("limit", 20),
		Category: c.Query("category"),
	}
	products, err := h.service.List(opts)
	if err != nil {
		log.Printf("products: list failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to list products")
	}
	return response.OK(c, h.formatter.ApplyAll(products), "Success")
}

func (h *Handler) getAllProducts(c *fiber.Ctx) error {
	products, err := h.service.List(ListOptions{})
	if err != nil {
		log.Printf("products: list all failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to list products")
	}
	return response.OK(c, h.formatter.ApplyAll(products), "Success")
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("products: get %d failed: %v", id, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to load product")
	}
	return response.OK(c, h.formatter.Apply(p), "Success")
}

func (h *Handler) getFavoriteProducts(c *fiber.Ctx) error {
	products, err := h.service.Favorites()
	if err != nil {
		log.Printf("products: favorites failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to list favorites")
	}
	return response.OK(c, h.formatter.ApplyAll(products), "Success")
}

func (h *Handler) searchProducts(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return response.OK(c, []Formatted{}, "empty search query")
	}
	products, err := h.service.Search(q)
	if err != nil {
		log.Printf("products: search %q failed: %v", q, err)
		return response.Error(c, fiber.StatusInternalServerError, "search failed")
	}
	return response.OK(c, h.formatter.ApplyAll(products), "Success")
}

func validateCreatePayload(p *ProductCreate) map[string]string {
	errs := map[string]string{}
	if p.ProductName == "" {
		errs["product_name"] = "product_name is required"
	}
	if p.BrandName == "" {
		errs["brand_name"] = "brand_name is required"
	}
	if p.Price != "" {
		if _, err := strconv.ParseFloat(p.Price, 64); err != nil {
			errs["price"] = "price must be numeric"
		}
	}
	if p.Discount != "" {
		if _, err := strconv.ParseFloat(p.Discount, 64); err != nil {
			errs["discount"] = "discount must be numeric"
		}
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	payload := new(ProductCreate)
	if err := c.BodyParser(payload); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if ves := validateCreatePayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	created, err := h.service.Create(*payload)
	if err != nil {
		log.Printf("products: create failed: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(response.New(fiber.StatusCreated, "product created", h.formatter.Apply(created)))
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	payload := new(ProductUpdate)
	if err := c.BodyParser(payload); err != nil {
		return response.Error(c, fiber.StatusBadRequest, err.Error())
	}
	updated, err := h.service.Update(id, *payload)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("products: update %d failed: %v", id, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to update product")
	}
	return response.OK(c, h.formatter.Apply(updated), "product updated")
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, fiber.StatusNotFound, "product not found")
		}
		log.Printf("products: delete %d failed: %v", id, err)
		return response.Error(c, fiber.StatusInternalServerError, "failed to delete product")
	}
	return response.OK(c, nil, "product deleted")
}
